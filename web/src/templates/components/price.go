package components

import (
	"strings"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/domain"
)

// PriceCompare shows the discounted price with the list price struck through.
func PriceCompare(discounted, list domain.Rupiah, discountedClass string) gomponents.Node {
	return Div(
		Class("text-right"),
		Span(Class(discountedClass), Style("color: var(--primary)"), Data("price", "discounted"), gomponents.Text(discounted.String())),
		Span(Class("text-sm text-slate-500 line-through"), Data("price", "list"), gomponents.Text(list.String())),
	)
}

// Stars renders a fixed rating as filled star glyphs.
func Stars(n int) gomponents.Node {
	return Div(
		Class("flex mt-3"),
		Style("color: var(--accent)"),
		Aria("label", "rating"),
		gomponents.Text(strings.Repeat("★", n)),
	)
}
