package layouts

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Theme carries the two brand colors. Every component refers to them
// through the --primary and --accent CSS variables.
type Theme struct {
	Primary string
	Accent  string
}

// DefaultTheme is the stock Speak Up Partners palette.
var DefaultTheme = Theme{Primary: "#014782", Accent: "#FDC412"}

// htmxConfig lets boosted form posts swap 422 responses, so a rejected
// modal comes back with its field errors instead of being dropped.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Base is the HTML shell shared by every page. The body is boosted, so
// action forms and links swap the body in place when JavaScript is on.
func Base(title string, theme Theme, children ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("id"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.Meta(g.Name("htmx-config"), g.Content(htmxConfig)),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4"), g.Defer()),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/site.css")),
				g.StyleEl(cmp.Rawf(":root{--primary:%s;--accent:%s;}", theme.Primary, theme.Accent)),
			),
			g.Body(
				g.Class("min-h-screen font-sans bg-white"),
				hx.Boost("true"),
				cmp.Group(children),
			),
		),
	)
}
