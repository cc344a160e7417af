package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/components"
)

// CoursePreview summarises the flagship course and offers the free ebook.
func CoursePreview() cmp.Node {
	flagship := catalog.Flagship()
	ebook := catalog.PreviewEbook

	return g.Main(
		g.ID("page-course-preview"),
		g.Class("min-h-screen bg-slate-50 py-20"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-6"),
			pageHeading("Preview Kursus", "Lihat sekilas materi dan metode pembelajaran yang akan Anda dapatkan"),
			g.Div(
				g.Class("grid lg:grid-cols-3 gap-8"),
				g.Div(
					g.Class("lg:col-span-2"),
					g.Div(
						g.Class("bg-white rounded-2xl shadow-2xl overflow-hidden p-8"),
						g.H2(g.Class("text-3xl font-bold mb-6"), g.Style("color: var(--primary)"), cmp.Text(flagship.Title+" - Preview")),
						g.Div(
							g.Class("space-y-6"),
							g.Div(
								g.H3(g.Class("text-xl font-semibold mb-3"), g.Style("color: var(--primary)"), cmp.Text("Apa yang akan Anda pelajari?")),
								g.Ul(g.Class("space-y-2"), g.Style("color: var(--primary)"),
									cmp.Map(catalog.PreviewOutline, func(s string) cmp.Node { return g.Li(cmp.Text("✓ " + s)) }),
								),
							),
							g.Div(
								g.H3(g.Class("text-xl font-semibold mb-3"), g.Style("color: var(--primary)"), cmp.Text("Metode Pembelajaran")),
								g.Ul(g.Class("space-y-2"), g.Style("color: var(--primary)"),
									cmp.Map(catalog.PreviewMethods, func(s string) cmp.Node { return g.Li(cmp.Text("• " + s)) }),
								),
							),
						),
						g.Div(
							g.Class("mt-8 flex flex-col sm:flex-row gap-4"),
							components.EnrollButton(flagship.ID,
								g.Class("px-8 py-4 rounded-full font-bold text-lg text-white hover:shadow-xl transition-all"),
								g.Style("background-color: var(--primary)"),
								cmp.Text("Daftar Kursus Lengkap"),
							),
						),
					),
				),
				g.Aside(
					g.Class("bg-white rounded-2xl shadow-lg p-6 h-fit"),
					g.H3(g.Class("text-xl font-semibold mb-4"), g.Style("color: var(--primary)"), cmp.Text("Materi Preview")),
					g.P(g.Class("text-slate-600 mb-4"), cmp.Text("Download ebook preview gratis untuk melihat kualitas pembelajaran kami")),
					g.Div(
						g.ID("preview-ebook"),
						g.Class("border-2 border-dashed border-[var(--primary)] rounded-lg p-6 text-center hover:bg-slate-50 transition-colors"),
						g.Div(g.Class("text-6xl mb-4"), cmp.Text("📚")),
						g.H4(g.Class("font-semibold text-lg mb-2"), g.Style("color: var(--primary)"), cmp.Text("Ebook Preview: "+ebook.Title)),
						g.P(g.Class("text-sm text-slate-600 mb-4"), cmp.Text(fmt.Sprintf("%d halaman • %s • %s", ebook.Pages, ebook.Format, ebook.Size))),
						g.P(g.Class("text-xs text-slate-500 mb-4"), cmp.Text(ebook.Summary)),
						components.ActionButton(site.ActionDownload, nil,
							g.Class("w-full py-3 rounded-lg font-bold text-white transition-all hover:shadow-lg text-center"),
							g.Style("background-color: var(--primary)"),
							cmp.Text("Download Ebook Preview"),
						),
					),
				),
			),
		),
	)
}
