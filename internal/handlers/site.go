package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
	"github.com/speakuppartners/site/internal/middleware"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/view"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

// SiteHandler renders the site and turns intents into reducer actions.
type SiteHandler struct {
	theme layouts.Theme
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(theme layouts.Theme) *SiteHandler {
	return &SiteHandler{theme: theme}
}

// IndexGet renders the whole site for the visitor's current state.
func (h *SiteHandler) IndexGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", view.App(view.NewAppData(c, h.theme)))
}

// NavigatePost selects a page.
func (h *SiteHandler) NavigatePost(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, err := site.ParsePage(req.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.dispatch(c, site.Navigate{Page: page})
}

// ToggleMenuPost opens or closes the mobile menu.
func (h *SiteHandler) ToggleMenuPost(c echo.Context) error {
	return h.dispatch(c, site.ToggleMobileMenu{})
}

// EnrollPost opens the registration modal, optionally for one course.
func (h *SiteHandler) EnrollPost(c echo.Context) error {
	var req EnrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Course != "" {
		if _, err := catalog.CourseByID(req.Course); err != nil {
			if errors.Is(err, domain.ErrCourseNotFound) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return err
		}
	}
	return h.dispatch(c, site.OpenRegistration{CourseID: req.Course})
}

// DownloadPost opens the ebook download modal.
func (h *SiteHandler) DownloadPost(c echo.Context) error {
	return h.dispatch(c, site.OpenDownload{})
}

// CloseRegistrationPost closes the registration modal.
func (h *SiteHandler) CloseRegistrationPost(c echo.Context) error {
	return h.dispatch(c, site.CloseRegistration{})
}

// CloseDownloadPost closes the ebook download modal.
func (h *SiteHandler) CloseDownloadPost(c echo.Context) error {
	return h.dispatch(c, site.CloseDownload{})
}

// dispatch applies action to the session state and redirects back to the
// site (Post/Redirect/Get).
func (h *SiteHandler) dispatch(c echo.Context, action site.Action) error {
	next, err := view.Dispatch(c, action)
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", action, err)
	}
	middleware.FromContext(c.Request().Context()).Debug("Action dispatched",
		slog.String("action", action.String()),
		slog.String("page", string(next.Page)),
	)
	return c.Redirect(http.StatusSeeOther, site.Root)
}
