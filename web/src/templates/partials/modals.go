package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/components"
)

const inputClass = "w-full p-3 border rounded-lg focus:ring-2 focus:ring-[var(--primary)] focus:border-transparent"

type field struct {
	name        string
	label       string
	kind        string
	placeholder string
	value       string
	required    bool
}

func fieldError(name string, errs forms.FieldErrors) cmp.Node {
	msg, ok := errs[name]
	if !ok {
		return cmp.Group(nil)
	}
	return g.P(g.ID(name+"-error"), g.Class("mt-1 text-sm text-red-600"), g.Data("error", name), cmp.Text(msg))
}

func formField(f field, errs forms.FieldErrors) cmp.Node {
	label := f.label
	if f.required {
		label += " *"
	}
	attrs := []cmp.Node{
		g.ID(f.name),
		g.Name(f.name),
		g.Class(inputClass),
		g.Placeholder(f.placeholder),
		cmp.If(f.required, g.Required()),
		cmp.If(errs.Has(f.name), cmp.Group([]cmp.Node{g.Aria("invalid", "true"), g.Aria("describedby", f.name+"-error")})),
	}

	var control cmp.Node
	if f.kind == "textarea" {
		control = g.Textarea(append(attrs, g.Rows("3"), cmp.Text(f.value))...)
	} else {
		control = g.Input(append(attrs, g.Type(f.kind), g.Value(f.value))...)
	}

	return g.Div(
		g.Label(g.For(f.name), g.Class("block text-sm font-medium text-slate-700 mb-1"), cmp.Text(label)),
		control,
		fieldError(f.name, errs),
	)
}

func formError(errs forms.FieldErrors) cmp.Node {
	msg, ok := errs[forms.FormErrorKey]
	if !ok {
		return cmp.Group(nil)
	}
	return g.Div(g.Role("alert"), g.Class("bg-red-50 border border-red-200 text-red-800 rounded-lg p-4 text-sm"), cmp.Text(msg))
}

func modal(id, title, closeAction string, header cmp.Node, body cmp.Node) cmp.Node {
	return g.Div(
		g.ID(id),
		g.Role("dialog"),
		g.Aria("modal", "true"),
		g.Aria("labelledby", id+"-title"),
		g.Class("fixed inset-0 bg-black/50 flex items-center justify-center z-50 p-4"),
		g.Div(
			g.Class("bg-white rounded-2xl max-w-md w-full max-h-[90vh] overflow-y-auto"),
			g.Div(
				g.Class("p-6 border-b"),
				g.Div(
					g.Class("flex justify-between items-center"),
					g.H3(g.ID(id+"-title"), g.Class("text-2xl font-bold text-[var(--primary)]"), cmp.Text(title)),
					components.ActionButton(closeAction, nil,
						g.Class("text-slate-500 hover:text-slate-700 text-xl"),
						g.Aria("label", "Tutup"),
						cmp.Text("✕"),
					),
				),
				header,
			),
			body,
		),
	)
}

// RegistrationModal is the enrollment form. course is nil when the modal
// was opened without a specific course. form and errs carry a rejected
// attempt back to the visitor.
func RegistrationModal(course *domain.EnrollmentContext, form forms.RegistrationForm, errs forms.FieldErrors) cmp.Node {
	var header cmp.Node = cmp.Group(nil)
	if course != nil {
		header = g.Div(
			g.ID("registration-course"),
			g.Class("mt-4 bg-slate-50 p-4 rounded-lg"),
			g.H4(g.Class("font-semibold text-[var(--primary)]"), cmp.Text(course.Title)),
			g.Div(
				g.Class("flex justify-between items-center mt-2"),
				g.Span(g.Class("text-slate-500 line-through"), g.Data("price", "list"), cmp.Text(course.Price.String())),
				g.Span(g.Class("text-lg font-bold text-[var(--primary)]"), g.Data("price", "discounted"), cmp.Text(course.DiscountedPrice.String())),
			),
		)
	}

	return modal("registration-modal", "Form Pendaftaran Kursus", site.ActionCloseRegistration, header,
		g.Form(
			g.Method("post"),
			g.Action(site.FormRegistration),
			g.Class("p-6 space-y-4"),
			formError(errs),
			formField(field{name: "fullName", label: "Nama Lengkap", kind: "text", placeholder: "Masukkan nama lengkap", value: form.FullName, required: true}, errs),
			formField(field{name: "email", label: "Email", kind: "email", placeholder: "email@contoh.com", value: form.Email, required: true}, errs),
			formField(field{name: "phone", label: "Nomor WhatsApp", kind: "tel", placeholder: "08123456789", value: form.Phone, required: true}, errs),
			formField(field{name: "goals", label: "Tujuan Mengikuti Kursus", kind: "textarea", placeholder: "Apa yang ingin Anda capai setelah mengikuti kursus ini?", value: form.Goals}, errs),
			g.Div(
				g.Class("bg-yellow-50 border border-yellow-200 rounded-lg p-4"),
				g.P(g.Class("text-sm text-yellow-800"),
					cmp.Text("💡 "), g.Strong(cmp.Text("Promo Spesial:")), cmp.Text(" Dapatkan diskon 50% untuk pendaftaran hari ini!"),
				),
			),
			g.Button(
				g.Type("submit"),
				g.Class("w-full py-4 rounded-lg font-bold text-white transition-all hover:shadow-lg text-lg"),
				g.Style("background-color: var(--primary)"),
				cmp.Text("Daftar Sekarang dengan Diskon 50%"),
			),
			g.P(g.Class("text-xs text-slate-500 text-center"),
				cmp.Text("Dengan mendaftar, Anda menyetujui syarat dan ketentuan kami. Tim kami akan menghubungi Anda untuk konfirmasi."),
			),
		),
	)
}

// DownloadModal collects contact details in exchange for the preview ebook.
func DownloadModal(ebook domain.Asset, form forms.DownloadForm, errs forms.FieldErrors) cmp.Node {
	header := g.P(g.Class("text-slate-600 mt-2"), cmp.Text("Isi data diri untuk mengunduh ebook preview gratis"))

	return modal("download-modal", "Download Ebook Preview", site.ActionCloseDownload, header,
		g.Form(
			g.Method("post"),
			g.Action(site.FormDownload),
			g.Class("p-6 space-y-4"),
			formError(errs),
			formField(field{name: "fullName", label: "Nama Lengkap", kind: "text", placeholder: "Masukkan nama lengkap", value: form.FullName, required: true}, errs),
			formField(field{name: "email", label: "Email", kind: "email", placeholder: "email@contoh.com", value: form.Email, required: true}, errs),
			formField(field{name: "phone", label: "Nomor WhatsApp", kind: "tel", placeholder: "08123456789", value: form.Phone, required: true}, errs),
			g.Div(
				g.Class("bg-blue-50 border border-blue-200 rounded-lg p-4"),
				g.P(g.Class("text-sm text-blue-800"),
					cmp.Text("📚 "), g.Strong(cmp.Text("Ebook Preview:")), cmp.Text(" "+ebook.Title),
				),
				g.Ul(g.Class("text-sm text-blue-800 mt-1"),
					cmp.Map(ebook.Bullets, func(b string) cmp.Node { return g.Li(cmp.Text("• " + b)) }),
				),
			),
			g.Button(
				g.Type("submit"),
				g.Class("w-full py-4 rounded-lg font-bold text-white transition-all hover:shadow-lg text-lg"),
				g.Style("background-color: var(--primary)"),
				cmp.Text("Download Ebook Preview Gratis"),
			),
			g.P(g.Class("text-xs text-slate-500 text-center"), cmp.Text("Ebook akan dikirim ke email Anda dalam beberapa menit.")),
		),
	)
}
