package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), g.P(cmp.Text("halo")))
		require.NoError(t, err)
		assert.Equal(t, "<p>halo</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), templ.Raw("<b>hi</b>"))
		require.NoError(t, err)
		assert.Equal(t, "<b>hi</b>", string(out))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.Error(t, err)
	})
}

func TestRender_ThroughEcho(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusUnprocessableEntity, "", g.Div(g.ID("x")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `<div id="x"></div>`, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}
