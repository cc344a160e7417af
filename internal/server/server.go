package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/speakuppartners/site/internal/config"
	"github.com/speakuppartners/site/internal/handlers"
	appmiddleware "github.com/speakuppartners/site/internal/middleware"
	"github.com/speakuppartners/site/internal/module"
	"github.com/speakuppartners/site/internal/rendering"
	"github.com/speakuppartners/site/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Renderer rendering.Renderer

	modules []module.Module
}

// Dependencies is what New needs to build a Server.
type Dependencies struct {
	Config   config.Provider
	Renderer *rendering.UniversalRenderer
	// Echo is optional; tests may pass their own instance.
	Echo *echo.Echo
}

// New creates a new Server instance with the middleware stack applied.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   deps.Config.GetAppEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Renderer: deps.Renderer,
	}, nil
}
