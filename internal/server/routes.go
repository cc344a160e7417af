package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/handlers"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/view"
)

// RegisterRoutes sets up the site and API routes. The lead forms are
// mounted by the leads module.
func (s *Server) RegisterRoutes() {
	siteHandler := handlers.NewSiteHandler(view.ThemeFrom(s.Cfg))

	s.E.GET(site.Root, siteHandler.IndexGet)

	s.E.POST(site.ActionNavigate, siteHandler.NavigatePost)
	s.E.POST(site.ActionToggleMenu, siteHandler.ToggleMenuPost)
	s.E.POST(site.ActionEnroll, siteHandler.EnrollPost)
	s.E.POST(site.ActionDownload, siteHandler.DownloadPost)
	s.E.POST(site.ActionCloseRegistration, siteHandler.CloseRegistrationPost)
	s.E.POST(site.ActionCloseDownload, siteHandler.CloseDownloadPost)

	api := s.E.Group("/api")
	api.GET("/catalog", handlers.CatalogGet)
	api.GET("/catalog/:id", handlers.CourseGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
