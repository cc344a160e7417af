package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/components"
)

const heroImage = "https://images.unsplash.com/photo-1543269865-cbf427effbad?q=80&w=1200&auto=format&fit=crop"

// Home is the landing page: hero, feature grid, featured courses and
// testimonials.
func Home() cmp.Node {
	return g.Main(
		g.ID("page-home"),
		hero(catalog.Flagship()),
		featureGrid(),
		featuredCourses(),
		testimonials(),
	)
}

func hero(flagship domain.Course) cmp.Node {
	return g.Section(
		g.Class("hero-gradient min-h-screen flex items-center relative overflow-hidden"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6 py-20 grid lg:grid-cols-2 gap-12 items-center relative z-10"),
			g.Div(
				g.Class("text-white"),
				g.Div(g.Class("inline-block px-4 py-1 rounded-full bg-white/20 backdrop-blur-sm text-sm mb-6"),
					cmp.Text("🎉 Special Launch Discount - 50% Off"),
				),
				g.H1(g.Class("text-5xl lg:text-6xl font-bold leading-tight mb-6"),
					cmp.Text("Ubah "), g.Span(g.Style("color: var(--accent)"), cmp.Text("Ketakutan")), cmp.Text(" Menjadi Kekuatan"),
				),
				g.P(g.Class("text-xl mb-8 opacity-90"),
					cmp.Text("Bergabunglah dengan 1,200+ alumni yang telah menguasai public speaking dan membangun karir gemilang."),
				),
				g.Div(
					g.Class("flex flex-col sm:flex-row gap-4 mb-8"),
					components.EnrollButton(flagship.ID,
						g.Class("px-8 py-4 rounded-full font-bold text-lg shadow-lg hover:shadow-xl transition-all text-center transform hover:scale-105"),
						g.Style("background-color: var(--accent); color: var(--primary)"),
						cmp.Text("Mulai Belajar Sekarang"),
					),
					components.NavButton(site.PageCoursePreview,
						g.Class("px-8 py-4 rounded-full font-bold text-lg border-2 border-white text-white hover:bg-white/10 transition-all text-center transform hover:scale-105"),
						cmp.Text("Lihat Preview Kursus"),
					),
				),
				g.Div(
					g.Class("grid grid-cols-3 gap-4 text-center"),
					cmp.Map(catalog.Stats(), func(s domain.Stat) cmp.Node {
						return g.Div(
							g.Div(g.Class("text-2xl font-bold text-white"), cmp.Text(s.Value)),
							g.Div(g.Class("text-sm text-white/70"), cmp.Text(s.Label)),
						)
					}),
				),
			),
			g.Div(
				g.Class("relative"),
				g.Div(
					g.Class("bg-white rounded-2xl shadow-2xl p-6 transform hover:scale-105 transition-transform duration-300"),
					g.Img(g.Src(heroImage), g.Alt(flagship.Title), g.Class("w-full rounded-xl h-80 object-cover")),
					g.Div(
						g.Class("mt-6"),
						g.Div(
							g.Class("flex justify-between items-start mb-4"),
							g.Div(
								g.H3(g.Class("text-2xl font-bold text-[var(--primary)]"), cmp.Text(flagship.Title)),
								g.P(g.Class("text-slate-600 mt-2"), cmp.Text("Kursus paling komprehensif untuk menguasai public speaking")),
							),
							components.PriceCompare(flagship.DiscountedPrice, flagship.Price, "block text-2xl font-bold"),
						),
						components.EnrollButton(flagship.ID,
							g.Class("w-full py-3 rounded-lg font-bold text-white transition-all hover:shadow-lg text-center transform hover:scale-105"),
							g.Style("background-color: var(--primary)"),
							cmp.Text("Daftar dengan Diskon 50%"),
						),
					),
				),
			),
		),
	)
}

func sectionHeading(title, subtitle string) cmp.Node {
	return g.Div(
		g.Class("text-center mb-16"),
		g.H2(g.Class("text-4xl font-bold mb-4"), g.Style("color: var(--primary)"), cmp.Text(title)),
		g.P(g.Class("text-xl text-slate-600 max-w-2xl mx-auto"), cmp.Text(subtitle)),
	)
}

func featureGrid() cmp.Node {
	return g.Section(
		g.Class("py-20 bg-slate-50"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("Mengapa Memilih Kami?", "Metode pembelajaran yang telah terbukti efektif membantu ribuan peserta"),
			g.Div(
				g.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				cmp.Map(catalog.Features(), func(f domain.FeatureHighlight) cmp.Node {
					return g.Div(
						g.Class("bg-white p-6 rounded-xl shadow-lg text-center hover:shadow-xl transition-shadow"),
						g.Div(g.Class("text-4xl mb-4"), cmp.Text(f.Icon)),
						g.H3(g.Class("text-xl font-semibold"), g.Style("color: var(--primary)"), cmp.Text(f.Title)),
						g.P(g.Class("text-slate-600"), cmp.Text(f.Description)),
					)
				}),
			),
		),
	)
}

func featuredCourses() cmp.Node {
	return g.Section(
		g.Class("py-20"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("Kursus Populer", "Investasi terbaik untuk masa depan karir Anda"),
			g.Div(
				g.Class("grid lg:grid-cols-2 gap-8"),
				cmp.Map(catalog.FeaturedCourses(), func(c domain.Course) cmp.Node {
					return g.Div(
						g.Class("bg-white rounded-2xl shadow-lg overflow-hidden course-card"),
						g.Data("course", c.ID),
						courseImage(c),
						g.Div(
							g.Class("p-6"),
							g.H3(g.Class("text-2xl font-bold mb-3"), g.Style("color: var(--primary)"), cmp.Text(c.Title)),
							g.P(g.Class("text-slate-600 mb-4"), cmp.Text(c.Description)),
							g.Div(
								g.Class("flex justify-between items-center mb-4"),
								components.PriceCompare(c.DiscountedPrice, c.Price, "block font-bold text-lg"),
								g.Span(g.Class("text-sm text-slate-500"), cmp.Text(c.Duration)),
							),
							components.EnrollButton(c.ID,
								g.Class("w-full py-3 rounded-lg font-bold text-white transition-all hover:shadow-lg text-center"),
								g.Style("background-color: var(--primary)"),
								cmp.Text("Lihat Detail Kursus"),
							),
						),
					)
				}),
			),
		),
	)
}

func testimonials() cmp.Node {
	return g.Section(
		g.Class("py-20 bg-slate-50"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("Kata Alumni Kami", "Bukti nyata kesuksesan peserta kursus"),
			g.Div(
				g.Class("grid md:grid-cols-2 gap-8"),
				cmp.Map(catalog.Testimonials(), func(t domain.Testimonial) cmp.Node {
					return g.Figure(
						g.Class("bg-white p-6 rounded-xl shadow-lg hover:shadow-xl transition-shadow"),
						g.Div(
							g.Class("flex items-center mb-4"),
							g.Img(g.Src(t.Avatar), g.Alt(t.Author), g.Class("w-12 h-12 rounded-full mr-4")),
							g.Div(
								g.H4(g.Class("font-semibold"), g.Style("color: var(--primary)"), cmp.Text(t.Author)),
								g.P(g.Class("text-sm text-slate-500"), cmp.Text(t.Role)),
							),
						),
						g.BlockQuote(g.Class("text-slate-700 italic"), cmp.Text("“"+t.Quote+"”")),
						components.Stars(t.Rating()),
					)
				}),
			),
		),
	)
}

func courseImage(c domain.Course) cmp.Node {
	return g.Div(
		g.Class("relative"),
		g.Img(g.Src(c.Image), g.Alt(c.Title), g.Class("w-full h-48 object-cover")),
		g.Div(
			g.Class("absolute top-4 right-4 px-3 py-1 rounded-full text-sm font-semibold text-white"),
			g.Style("background-color: var(--primary)"),
			cmp.Text(c.Tag),
		),
	)
}
