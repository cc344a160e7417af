package pages

import (
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/web/src/templates/components"
)

// Blog lists the article teasers, newest first.
func Blog() cmp.Node {
	return g.Main(
		g.ID("page-blog"),
		g.Class("min-h-screen bg-slate-50 py-20"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			pageHeading("Blog & Artikel", "Tips, trik, dan insight terbaru tentang public speaking dan pengembangan diri"),
			g.Div(
				g.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				cmp.Map(catalog.BlogPosts(), postCard),
			),
		),
	)
}

func postCard(p domain.BlogPost) cmp.Node {
	return g.Article(
		g.Class("bg-white rounded-2xl shadow-lg overflow-hidden hover:shadow-xl transition-shadow"),
		g.Img(g.Src(p.Image), g.Alt(p.Title), g.Class("w-full h-48 object-cover")),
		g.Div(
			g.Class("p-6"),
			g.Div(
				g.Class("flex justify-between items-center mb-3"),
				g.Span(g.Class("px-3 py-1 rounded-full text-xs font-medium text-white"), g.Style("background-color: var(--primary)"), cmp.Text(p.Category)),
				g.Span(g.Class("text-sm text-slate-500"), cmp.Text(p.ReadTime)),
			),
			g.H2(g.Class("text-xl font-bold mb-3"), g.Style("color: var(--primary)"), cmp.Text(p.Title)),
			components.Markdown("text-slate-600 mb-4", p.Excerpt),
			g.Div(
				g.Class("flex justify-between items-center"),
				g.Time(cmp.Attr("datetime", p.PublishedAt.Format(time.DateOnly)), g.Class("text-sm text-slate-500"), cmp.Text(p.PublishedAt.Format(time.DateOnly))),
				g.Span(g.Class("text-sm font-medium"), g.Style("color: var(--primary)"), cmp.Text("Baca Selengkapnya →")),
			),
		),
	)
}
