package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/handlers"
	"github.com/speakuppartners/site/internal/rendering"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

type recordingSink struct {
	mu    sync.Mutex
	leads []domain.Lead
	err   error
}

func (s *recordingSink) Submit(_ context.Context, lead domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, lead)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}

// visitor is a browser with a cookie jar talking to the test server.
type visitor struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newVisitor(t *testing.T, sink domain.LeadSink) *visitor {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("handler-test-secret-0123456789"))))

	sh := handlers.NewSiteHandler(layouts.DefaultTheme)
	fh := handlers.NewFormHandler(forms.NewSubmitter(sink), layouts.DefaultTheme)

	e.GET(site.Root, sh.IndexGet)
	e.POST(site.ActionNavigate, sh.NavigatePost)
	e.POST(site.ActionToggleMenu, sh.ToggleMenuPost)
	e.POST(site.ActionEnroll, sh.EnrollPost)
	e.POST(site.ActionDownload, sh.DownloadPost)
	e.POST(site.ActionCloseRegistration, sh.CloseRegistrationPost)
	e.POST(site.ActionCloseDownload, sh.CloseDownloadPost)
	e.POST(site.FormRegistration, fh.RegistrationPost)
	e.POST(site.FormDownload, fh.DownloadPost)
	e.GET("/api/catalog", handlers.CatalogGet)
	e.GET("/api/catalog/:id", handlers.CourseGet)

	return &visitor{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (v *visitor) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	v.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		v.cookies[c.Name] = c
	}
	return rec
}

// post submits an action and asserts the Post/Redirect/Get response.
func (v *visitor) post(path string, form url.Values) {
	v.t.Helper()
	rec := v.do(http.MethodPost, path, form)
	require.Equal(v.t, http.StatusSeeOther, rec.Code, rec.Body.String())
	require.Equal(v.t, site.Root, rec.Header().Get(echo.HeaderLocation))
}

func (v *visitor) page() string {
	v.t.Helper()
	rec := v.do(http.MethodGet, site.Root, nil)
	require.Equal(v.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestIndex_FirstVisitShowsHome(t *testing.T) {
	v := newVisitor(t, &recordingSink{})
	html := v.page()

	assert.Contains(t, html, `id="page-home"`)
	assert.Contains(t, html, `data-nav-target="home" aria-current="page"`)
}

func TestNavigate_EveryPage(t *testing.T) {
	v := newVisitor(t, &recordingSink{})

	for _, p := range site.Pages() {
		v.post(site.ActionNavigate, url.Values{"page": {string(p)}})
		html := v.page()
		assert.Contains(t, html, `id="page-`+string(p)+`"`)
		assert.Contains(t, html, `data-nav-target="`+string(p)+`" aria-current="page"`)
	}
}

func TestNavigate_UnknownPage(t *testing.T) {
	v := newVisitor(t, &recordingSink{})

	rec := v.do(http.MethodPost, site.ActionNavigate, url.Values{"page": {"pricing"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = v.do(http.MethodPost, site.ActionNavigate, url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMobileMenu_ClosedByNavigation(t *testing.T) {
	v := newVisitor(t, &recordingSink{})

	v.post(site.ActionToggleMenu, nil)
	assert.Contains(t, v.page(), `id="mobile-menu"`)

	v.post(site.ActionToggleMenu, nil)
	v.post(site.ActionToggleMenu, nil)
	v.post(site.ActionNavigate, url.Values{"page": {"blog"}})
	assert.NotContains(t, v.page(), `id="mobile-menu"`)

	v.post(site.ActionNavigate, url.Values{"page": {"blog"}})
	assert.NotContains(t, v.page(), `id="mobile-menu"`)
}

func TestEnroll_ShowsCourseInModal(t *testing.T) {
	for _, c := range catalog.Courses() {
		t.Run(c.ID, func(t *testing.T) {
			v := newVisitor(t, &recordingSink{})
			v.post(site.ActionEnroll, url.Values{"course": {c.ID}})

			html := v.page()
			assert.Contains(t, html, `id="registration-modal"`)
			assert.Contains(t, html, c.Title)
			assert.Contains(t, html, `data-price="discounted">`+c.DiscountedPrice.String()+"<")
		})
	}
}

func TestEnroll_UnknownCourse(t *testing.T) {
	v := newVisitor(t, &recordingSink{})
	rec := v.do(http.MethodPost, site.ActionEnroll, url.Values{"course": {"basket-weaving"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCloseRegistration_ClearsCourse(t *testing.T) {
	origins := []site.PageID{site.PageHome, site.PageCourses, site.PageCoursePreview}
	for _, origin := range origins {
		t.Run(string(origin), func(t *testing.T) {
			v := newVisitor(t, &recordingSink{})
			v.post(site.ActionNavigate, url.Values{"page": {string(origin)}})
			v.post(site.ActionEnroll, url.Values{"course": {catalog.FlagshipID}})
			v.post(site.ActionCloseRegistration, nil)

			assert.NotContains(t, v.page(), `id="registration-modal"`)

			// Reopening without a course must not resurrect the old one.
			v.post(site.ActionEnroll, nil)
			html := v.page()
			assert.Contains(t, html, `id="registration-modal"`)
			assert.NotContains(t, html, `id="registration-course"`)
		})
	}
}

func TestRegistration_Accepted(t *testing.T) {
	sink := &recordingSink{}
	v := newVisitor(t, sink)
	v.post(site.ActionEnroll, url.Values{"course": {catalog.FlagshipID}})

	v.post(site.FormRegistration, url.Values{
		"fullName": {"Sarah"},
		"email":    {"sarah@example.com"},
		"phone":    {"081234567890"},
	})

	html := v.page()
	assert.Contains(t, html, "Terima kasih Sarah! Pendaftaran Anda untuk kursus Public Speaking Mastery berhasil.")
	assert.NotContains(t, html, `id="registration-modal"`)
	require.Equal(t, 1, sink.count())
	assert.Equal(t, catalog.FlagshipID, sink.leads[0].CourseID)

	// The confirmation is shown once.
	assert.NotContains(t, v.page(), "Terima kasih Sarah!")
}

func TestRegistration_MissingFieldKeepsModalOpen(t *testing.T) {
	sink := &recordingSink{}
	v := newVisitor(t, sink)
	v.post(site.ActionEnroll, url.Values{"course": {catalog.FlagshipID}})

	rec := v.do(http.MethodPost, site.FormRegistration, url.Values{
		"fullName": {"Sarah"},
		"email":    {"sarah@example.com"},
		"phone":    {"   "},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="registration-modal"`)
	assert.Contains(t, body, `id="phone-error"`)
	assert.Contains(t, body, `value="Sarah"`)
	assert.NotContains(t, body, "Terima kasih")
	assert.Zero(t, sink.count())

	assert.Contains(t, v.page(), `id="registration-modal"`)
}

func TestRegistration_SinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("bus closed")}
	v := newVisitor(t, sink)
	v.post(site.ActionEnroll, nil)

	rec := v.do(http.MethodPost, site.FormRegistration, url.Values{
		"fullName": {"Sarah"},
		"email":    {"sarah@example.com"},
		"phone":    {"081234567890"},
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="alert"`)
	assert.Contains(t, rec.Body.String(), `id="registration-modal"`)
}

func TestDownload_Accepted(t *testing.T) {
	sink := &recordingSink{}
	v := newVisitor(t, sink)
	v.post(site.ActionNavigate, url.Values{"page": {"course-preview"}})
	v.post(site.ActionDownload, nil)
	assert.Contains(t, v.page(), `id="download-modal"`)

	v.post(site.FormDownload, url.Values{
		"fullName": {"Budi"},
		"email":    {"budi@example.com"},
		"phone":    {"08123456789"},
	})

	html := v.page()
	assert.Contains(t, html, "Terima kasih Budi!")
	assert.Contains(t, html, "budi@example.com")
	assert.NotContains(t, html, `id="download-modal"`)
	assert.Contains(t, html, `id="page-course-preview"`)
	assert.Equal(t, 1, sink.count())
}

func TestDownload_InvalidEmail(t *testing.T) {
	sink := &recordingSink{}
	v := newVisitor(t, sink)
	v.post(site.ActionDownload, nil)

	rec := v.do(http.MethodPost, site.FormDownload, url.Values{
		"fullName": {"Budi"},
		"email":    {"budi"},
		"phone":    {"08123456789"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="email-error"`)
	assert.Zero(t, sink.count())
}

func TestCatalogAPI(t *testing.T) {
	v := newVisitor(t, &recordingSink{})

	rec := v.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Courses, 3)
	assert.Equal(t, catalog.FlagshipID, resp.Courses[0].ID)
	assert.Equal(t, "Rp 1.299.000", resp.Courses[0].PriceLabel)
	assert.Equal(t, "Rp 649.000", resp.Courses[0].DiscountedPriceLabel)

	rec = v.do(http.MethodGet, "/api/catalog/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
