package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/view"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

func renderApp(t *testing.T, d view.AppData) string {
	t.Helper()
	if d.Theme == (layouts.Theme{}) {
		d.Theme = layouts.DefaultTheme
	}
	var b strings.Builder
	require.NoError(t, view.App(d).Render(context.Background(), &b))
	return b.String()
}

func TestApp_RendersSelectedPageOnly(t *testing.T) {
	for _, p := range site.Pages() {
		t.Run(string(p), func(t *testing.T) {
			html := renderApp(t, view.AppData{State: site.State{Page: p}, Year: 2025})

			for _, other := range site.Pages() {
				root := `id="page-` + string(other) + `"`
				if other == p {
					assert.Contains(t, html, root)
				} else {
					assert.NotContains(t, html, root)
				}
			}

			assert.Equal(t, 1, strings.Count(html, `aria-current="page"`), "exactly one active nav item")
			assert.Contains(t, html, `data-nav-target="`+string(p)+`" aria-current="page"`)
			assert.Contains(t, html, "<title>"+p.Title()+" - Speak Up Partners</title>")
		})
	}
}

func TestApp_Shell(t *testing.T) {
	html := renderApp(t, view.AppData{State: site.Initial(), Year: 2031})

	assert.Contains(t, html, `hx-boost="true"`)
	assert.Contains(t, html, `name="htmx-config"`)
	assert.Contains(t, html, "--primary:#014782;--accent:#FDC412;")
	assert.Contains(t, html, "© 2031 Speak Up Partners")
	assert.NotContains(t, html, `id="mobile-menu"`)
	assert.NotContains(t, html, `id="registration-modal"`)
	assert.NotContains(t, html, `id="download-modal"`)
	assert.NotContains(t, html, `id="flash"`)
}

func TestApp_ThemeIsConfigurable(t *testing.T) {
	html := renderApp(t, view.AppData{State: site.Initial(), Theme: layouts.Theme{Primary: "#202E5D", Accent: "#F7DF71"}})
	assert.Contains(t, html, "--primary:#202E5D;--accent:#F7DF71;")
}

func TestApp_MobileMenu(t *testing.T) {
	html := renderApp(t, view.AppData{State: site.State{Page: site.PageHome, MobileMenuOpen: true}})
	assert.Contains(t, html, `id="mobile-menu"`)
	assert.Contains(t, html, `aria-expanded="true"`)
}

func TestApp_RegistrationModalShowsCourse(t *testing.T) {
	for _, c := range catalog.Courses() {
		t.Run(c.ID, func(t *testing.T) {
			s := site.Reduce(site.Initial(), site.OpenRegistration{CourseID: c.ID})
			html := renderApp(t, view.AppData{State: s})

			assert.Contains(t, html, `id="registration-modal"`)
			assert.Contains(t, html, `id="registration-course"`)
			assert.Contains(t, html, c.Title)
			assert.Contains(t, html, `data-price="discounted">`+c.DiscountedPrice.String()+"<")
		})
	}
}

func TestApp_RegistrationModalWithoutCourse(t *testing.T) {
	s := site.Reduce(site.Initial(), site.OpenRegistration{})
	html := renderApp(t, view.AppData{State: s})

	assert.Contains(t, html, `id="registration-modal"`)
	assert.NotContains(t, html, `id="registration-course"`)
}

func TestApp_RejectedSubmitKeepsValues(t *testing.T) {
	s := site.Reduce(site.Initial(), site.OpenRegistration{CourseID: catalog.FlagshipID})
	html := renderApp(t, view.AppData{
		State:              s,
		Registration:       forms.RegistrationForm{FullName: "Sarah", Email: "bukan-email"},
		RegistrationErrors: forms.FieldErrors{"email": "Format email tidak valid", "phone": "Wajib diisi"},
	})

	assert.Contains(t, html, `value="Sarah"`)
	assert.Contains(t, html, `value="bukan-email"`)
	assert.Contains(t, html, `id="email-error"`)
	assert.Contains(t, html, "Format email tidak valid")
	assert.Contains(t, html, `id="phone-error"`)
	assert.NotContains(t, html, `id="fullName-error"`)
}

func TestApp_DownloadModalAndFlash(t *testing.T) {
	s := site.Reduce(site.State{Page: site.PageCoursePreview}, site.OpenDownload{})
	html := renderApp(t, view.AppData{
		State:   s,
		Flashes: view.FlashData{Success: []string{"Terima kasih Sarah!"}},
	})

	assert.Contains(t, html, `id="download-modal"`)
	assert.Contains(t, html, "Public Speaking Basics")
	assert.Contains(t, html, `id="flash"`)
	assert.Contains(t, html, "Terima kasih Sarah!")
}

func TestApp_CoursesPageShowsCatalog(t *testing.T) {
	html := renderApp(t, view.AppData{State: site.State{Page: site.PageCourses}})

	assert.Equal(t, 3, strings.Count(html, `<article class="bg-white rounded-2xl shadow-lg overflow-hidden course-card"`))
	for _, c := range catalog.Courses() {
		assert.Contains(t, html, `data-course="`+c.ID+`"`)
		assert.Contains(t, html, c.Price.String())
		assert.Contains(t, html, c.DiscountedPrice.String())
	}
}

func TestApp_BlogRendersMarkdownExcerpts(t *testing.T) {
	html := renderApp(t, view.AppData{State: site.State{Page: site.PageBlog}})

	assert.Contains(t, html, "<em>nervous</em>")
	assert.Contains(t, html, "<strong>memorable</strong>")
	assert.Contains(t, html, `datetime="2024-03-15"`)
}
