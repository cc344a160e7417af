package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Flash shows confirmation notifications left by the previous request.
func Flash(success, errors []string) cmp.Node {
	if len(success) == 0 && len(errors) == 0 {
		return cmp.Group(nil)
	}
	return g.Div(
		g.ID("flash"),
		g.Class("fixed top-24 inset-x-0 z-40 flex flex-col items-center gap-2 px-4"),
		cmp.Map(success, func(msg string) cmp.Node {
			return g.Div(
				g.Role("status"),
				g.Class("max-w-xl w-full bg-green-50 border border-green-200 text-green-800 rounded-lg p-4 shadow"),
				cmp.Text(msg),
			)
		}),
		cmp.Map(errors, func(msg string) cmp.Node {
			return g.Div(
				g.Role("alert"),
				g.Class("max-w-xl w-full bg-red-50 border border-red-200 text-red-800 rounded-lg p-4 shadow"),
				cmp.Text(msg),
			)
		}),
	)
}
