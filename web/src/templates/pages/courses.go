package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/web/src/templates/components"
)

func pageHeading(title, subtitle string) cmp.Node {
	return g.Div(
		g.Class("text-center mb-16"),
		g.H1(g.Class("text-5xl font-bold mb-6"), g.Style("color: var(--primary)"), cmp.Text(title)),
		g.P(g.Class("text-xl text-slate-600 max-w-3xl mx-auto"), cmp.Text(subtitle)),
	)
}

// Courses lists the full catalog with price comparison and features.
func Courses() cmp.Node {
	return g.Main(
		g.ID("page-courses"),
		g.Class("min-h-screen bg-slate-50 py-20"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			pageHeading("Semua Kursus", "Pilih kursus yang sesuai dengan kebutuhan dan level Anda. Diskon 50% untuk pendaftaran pertama!"),
			g.Div(
				g.Class("grid lg:grid-cols-3 gap-8"),
				cmp.Map(catalog.Courses(), courseCard),
			),
		),
	)
}

func detailRow(label, value string) cmp.Node {
	return g.Div(
		g.Class("flex justify-between text-sm"),
		g.Span(g.Class("text-slate-500"), cmp.Text(label)),
		g.Span(g.Class("font-semibold"), cmp.Text(value)),
	)
}

func courseCard(c domain.Course) cmp.Node {
	return g.Article(
		g.Class("bg-white rounded-2xl shadow-lg overflow-hidden course-card"),
		g.Data("course", c.ID),
		courseImage(c),
		g.Div(
			g.Class("p-6"),
			g.H3(g.Class("text-2xl font-bold mb-3"), g.Style("color: var(--primary)"), cmp.Text(c.Title)),
			g.P(g.Class("text-slate-600 mb-4"), cmp.Text(c.Description)),
			g.Div(
				g.Class("space-y-2 mb-6"),
				detailRow("Level:", c.Level),
				detailRow("Durasi:", c.Duration),
				g.Div(
					g.Class("flex justify-between items-center"),
					g.Span(g.Class("text-slate-500"), cmp.Text("Harga:")),
					components.PriceCompare(c.DiscountedPrice, c.Price, "text-lg font-bold block"),
				),
			),
			g.Div(
				g.Class("mb-6"),
				g.H4(g.Class("font-semibold mb-2"), g.Style("color: var(--primary)"), cmp.Text("Yang Anda Dapatkan:")),
				g.Ul(
					g.Class("grid gap-1"),
					cmp.Map(c.Features, func(f string) cmp.Node {
						return g.Li(
							g.Class("flex items-center text-sm text-slate-600"),
							g.Span(g.Class("mr-2"), g.Style("color: var(--primary)"), cmp.Text("✓")),
							cmp.Text(f),
						)
					}),
				),
			),
			components.EnrollButton(c.ID,
				g.Class("w-full py-3 rounded-lg font-bold text-white transition-all hover:shadow-lg"),
				g.Style("background-color: var(--primary)"),
				cmp.Text("Daftar Sekarang"),
			),
		),
	)
}
