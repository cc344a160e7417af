package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/components"
)

func footerLink(page site.PageID, label string) cmp.Node {
	return g.Li(components.NavButton(page, g.Class("hover:text-white transition-colors"), cmp.Text(label)))
}

// Footer links back into the site and carries the contact details.
func Footer(year int) cmp.Node {
	return g.Footer(
		g.ID("footer"),
		g.Class("bg-slate-900 text-white py-12"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			g.Div(
				g.Class("grid md:grid-cols-4 gap-8"),
				g.Div(
					g.H3(g.Class("text-xl font-bold mb-4"), cmp.Text("Speak Up Partners")),
					g.P(g.Class("text-slate-400"), cmp.Text("Membantu Anda berbicara dengan percaya diri sejak 2020.")),
				),
				g.Div(
					g.H4(g.Class("font-semibold mb-4"), cmp.Text("Kursus")),
					g.Ul(
						g.Class("space-y-2 text-slate-400"),
						footerLink(site.PageCourses, "Public Speaking"),
						footerLink(site.PageCourses, "Presentation Skills"),
						footerLink(site.PageCourses, "Confidence Building"),
					),
				),
				g.Div(
					g.H4(g.Class("font-semibold mb-4"), cmp.Text("Perusahaan")),
					g.Ul(
						g.Class("space-y-2 text-slate-400"),
						footerLink(site.PageAbout, "Tentang Kami"),
						footerLink(site.PageBlog, "Blog"),
					),
				),
				g.Div(
					g.H4(g.Class("font-semibold mb-4"), cmp.Text("Kontak")),
					g.Ul(
						g.Class("space-y-2 text-slate-400"),
						g.Li(cmp.Text("hello@speakuppartners.id")),
						g.Li(cmp.Text("+62 21 1234 5678")),
						g.Li(cmp.Text("Jakarta, Indonesia")),
					),
				),
			),
			g.Div(
				g.Class("border-t border-slate-800 mt-8 pt-8 text-center text-slate-400"),
				g.P(cmp.Textf("© %d Speak Up Partners. All rights reserved.", year)),
			),
		),
	)
}
