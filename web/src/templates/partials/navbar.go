package partials

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/components"
)

// Navbar is the sticky header: logo, one button per page with the active
// page highlighted, the registration CTA and the mobile menu.
func Navbar(state site.State) cmp.Node {
	return g.Header(
		g.ID("navbar"),
		g.Class("bg-white shadow-sm sticky top-0 z-50"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6 py-4 flex items-center justify-between"),
			components.NavButton(site.PageHome,
				g.Class("flex items-center gap-3 text-left"),
				g.Div(
					g.Class("w-12 h-12 rounded-full flex items-center justify-center"),
					g.Style("background: linear-gradient(135deg,var(--accent),var(--primary))"),
					g.Strong(g.Class("text-white"), cmp.Text("SUP")),
				),
				g.Div(
					g.Span(g.Class("block text-xl font-bold text-[var(--primary)]"), cmp.Text("Speak Up Partners")),
					g.Span(g.Class("block text-sm text-slate-500"), cmp.Text("Master Your Voice")),
				),
			),
			g.Nav(
				g.Class("hidden lg:flex gap-8 items-center text-sm font-medium"),
				g.Aria("label", "Navigasi utama"),
				navItems(state, "transition-colors"),
				components.NavButton(site.PageCourses,
					g.Class("px-6 py-2 rounded-full font-semibold text-white transition-all hover:shadow-lg"),
					g.Style("background-color: var(--primary)"),
					cmp.Text("Daftar Sekarang"),
				),
			),
			g.Div(
				g.Class("lg:hidden"),
				components.ActionButton(site.ActionToggleMenu, nil,
					g.ID("mobile-menu-toggle"),
					g.Class("p-2 border rounded-lg"),
					g.Style("border-color: var(--primary)"),
					g.Aria("label", "Menu"),
					g.Aria("expanded", strconv.FormatBool(state.MobileMenuOpen)),
					burger(state.MobileMenuOpen),
				),
			),
		),
		cmp.If(state.MobileMenuOpen, mobileMenu(state)),
	)
}

func navItems(state site.State, class string) cmp.Node {
	return cmp.Map(site.NavItems(), func(item site.NavItem) cmp.Node {
		active := state.IsActive(item.Page)
		return components.NavButton(item.Page,
			cmp.If(active, g.Aria("current", "page")),
			g.Class(class+" "+navItemClass(active)),
			cmp.Text(item.Label),
		)
	})
}

func navItemClass(active bool) string {
	if active {
		return "text-[var(--primary)] font-semibold"
	}
	return "text-slate-600 hover:text-[var(--primary)]"
}

func burger(open bool) cmp.Node {
	top, middle, bottom := "", "", ""
	if open {
		top, middle, bottom = " rotate-45 translate-y-1", " opacity-0", " -rotate-45 -translate-y-2"
	}
	return g.Div(
		g.Class("w-6 h-6 flex flex-col justify-center"),
		g.Span(g.Class("block h-0.5 w-full bg-[var(--primary)] transition-all"+top)),
		g.Span(g.Class("block h-0.5 w-full bg-[var(--primary)] mt-1"+middle)),
		g.Span(g.Class("block h-0.5 w-full bg-[var(--primary)] mt-1"+bottom)),
	)
}

func mobileMenu(state site.State) cmp.Node {
	return g.Div(
		g.ID("mobile-menu"),
		g.Class("lg:hidden bg-white border-t"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-6 py-4 space-y-4"),
			navItems(state, "block w-full text-left py-2 transition-colors"),
			components.NavButton(site.PageCourses,
				g.Class("w-full px-6 py-2 rounded-full font-semibold text-white mt-4"),
				g.Style("background-color: var(--primary)"),
				cmp.Text("Daftar Sekarang"),
			),
		),
	)
}
