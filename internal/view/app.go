package view

import (
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/layouts"
	"github.com/speakuppartners/site/web/src/templates/pages"
	"github.com/speakuppartners/site/web/src/templates/partials"
)

// AppData is everything one render of the site needs.
type AppData struct {
	State   site.State
	Theme   layouts.Theme
	Flashes FlashData
	Year    int

	// Values and errors of a rejected submit, shown in the open modal.
	Registration       forms.RegistrationForm
	RegistrationErrors forms.FieldErrors
	Download           forms.DownloadForm
	DownloadErrors     forms.FieldErrors
}

// NewAppData collects the visitor's state and pending flashes.
func NewAppData(c echo.Context, theme layouts.Theme) AppData {
	return AppData{
		State:   LoadState(c),
		Theme:   theme,
		Flashes: GetFlashData(c),
		Year:    time.Now().Year(),
	}
}

// Page returns the component tree of one page.
func Page(p site.PageID) cmp.Node {
	switch p {
	case site.PageCourses:
		return pages.Courses()
	case site.PageCoursePreview:
		return pages.CoursePreview()
	case site.PageBlog:
		return pages.Blog()
	case site.PageAbout:
		return pages.About()
	default:
		return pages.Home()
	}
}

// AppNode composes the navigation shell, the selected page and any open
// modals inside the base layout.
func AppNode(d AppData) cmp.Node {
	s := d.State
	return layouts.Base(s.Page.Title(), d.Theme,
		partials.Navbar(s),
		partials.Flash(d.Flashes.Success, d.Flashes.Error),
		Page(s.Page),
		partials.Footer(d.Year),
		cmp.Iff(s.RegistrationOpen, func() cmp.Node {
			return partials.RegistrationModal(s.Enrollment(), d.Registration, d.RegistrationErrors)
		}),
		cmp.Iff(s.DownloadOpen, func() cmp.Node {
			return partials.DownloadModal(catalog.PreviewEbook, d.Download, d.DownloadErrors)
		}),
	)
}

// App is AppNode as a templ component, ready for the renderer.
func App(d AppData) templ.Component {
	return AdaptGomponentToTempl(AppNode(d))
}
