package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
)

// About is the company page: vision, mission and why visitors pick us.
func About() cmp.Node {
	return g.Main(
		g.ID("page-about"),
		g.Class("min-h-screen bg-slate-50 py-20"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-6"),
			pageHeading("Tentang Speak Up Partners",
				"Kami adalah platform pembelajaran public speaking terdepan yang telah membantu ribuan profesional mengembangkan kemampuan berbicara di depan umum dengan percaya diri."),
			g.Div(
				g.Class("grid lg:grid-cols-2 gap-12 items-center mb-20"),
				g.Div(
					g.H2(g.Class("text-3xl font-bold mb-6"), g.Style("color: var(--primary)"), cmp.Text("Visi & Misi")),
					g.Div(
						g.Class("space-y-4"),
						g.P(g.Class("text-lg text-slate-700"),
							g.Strong(cmp.Text("Visi:")),
							cmp.Text(" Menjadi partner terpercaya dalam mengembangkan kemampuan komunikasi publik yang efektif bagi setiap individu di Indonesia."),
						),
						g.P(g.Class("text-lg text-slate-700"),
							g.Strong(cmp.Text("Misi:")),
							cmp.Text(" Menyediakan program pembelajaran yang komprehensif, praktis, dan mudah diakses untuk membantu peserta mengatasi ketakutan berbicara di depan umum dan mengembangkan karir mereka."),
						),
					),
				),
				g.Div(
					g.Class("bg-white p-8 rounded-2xl shadow-lg"),
					g.Img(
						g.Src("https://images.unsplash.com/photo-1521737711867-e3b97375f902?q=80&w=1200&auto=format&fit=crop"),
						g.Alt("Team Collaboration"),
						g.Class("w-full rounded-lg h-64 object-cover"),
					),
				),
			),
			g.Div(
				g.Class("bg-white rounded-2xl shadow-lg p-8 mb-12"),
				g.H2(g.Class("text-3xl font-bold mb-8 text-center"), g.Style("color: var(--primary)"), cmp.Text("Mengapa Memilih Kami?")),
				g.Div(
					g.Class("grid md:grid-cols-3 gap-8"),
					cmp.Map(catalog.AboutPillars(), func(p domain.FeatureHighlight) cmp.Node {
						return g.Div(
							g.Class("text-center"),
							g.Div(
								g.Class("w-16 h-16 rounded-full flex items-center justify-center mx-auto mb-4 text-2xl"),
								g.Style("background-color: var(--accent)"),
								cmp.Text(p.Icon),
							),
							g.H3(g.Class("text-xl font-semibold mb-3"), g.Style("color: var(--primary)"), cmp.Text(p.Title)),
							g.P(g.Class("text-slate-600"), cmp.Text(p.Description)),
						)
					}),
				),
			),
		),
	)
}
