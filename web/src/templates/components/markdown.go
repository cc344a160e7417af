package components

import (
	"bytes"

	"github.com/yuin/goldmark"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var md = goldmark.New()

// Markdown renders trusted catalog copy authored in Markdown. goldmark
// escapes raw HTML unless told otherwise. On a conversion error the source
// is shown as plain text.
func Markdown(class, source string) gomponents.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return P(Class(class), gomponents.Text(source))
	}
	return Div(Class(class), gomponents.Raw(buf.String()))
}
