package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/forms"
	"github.com/speakuppartners/site/internal/middleware"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/view"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

const sinkFailureMessage = "Maaf, data Anda belum dapat diproses. Silakan coba lagi beberapa saat lagi."

// FormHandler handles the two lead modal submissions.
type FormHandler struct {
	submitter *forms.Submitter
	theme     layouts.Theme
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(submitter *forms.Submitter, theme layouts.Theme) *FormHandler {
	return &FormHandler{submitter: submitter, theme: theme}
}

// RegistrationPost submits the enrollment modal. A rejected attempt
// re-renders the site with the modal open (422). An accepted one leaves a
// confirmation flash, closes the modal and redirects.
func (h *FormHandler) RegistrationPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form forms.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	data := view.NewAppData(c, h.theme)
	if !data.State.RegistrationOpen {
		data.State = site.Reduce(data.State, site.OpenRegistration{})
	}

	outcome, err := h.submitter.SubmitRegistration(ctx, form, data.State.Enrollment())
	if err != nil {
		logger.Error("Failed to submit registration", slog.String("error", err.Error()))
		data.Registration = form
		data.RegistrationErrors = forms.FieldErrors{forms.FormErrorKey: sinkFailureMessage}
		return c.Render(http.StatusServiceUnavailable, "", view.App(data))
	}
	if !outcome.Accepted() {
		data.Registration = form
		data.RegistrationErrors = outcome.Errors
		return c.Render(http.StatusUnprocessableEntity, "", view.App(data))
	}

	return h.accept(c, outcome, site.CloseRegistration{})
}

// DownloadPost submits the ebook modal.
func (h *FormHandler) DownloadPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form forms.DownloadForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	data := view.NewAppData(c, h.theme)
	data.State = site.Reduce(data.State, site.OpenDownload{})

	outcome, err := h.submitter.SubmitDownload(ctx, form)
	if err != nil {
		logger.Error("Failed to submit download request", slog.String("error", err.Error()))
		data.Download = form
		data.DownloadErrors = forms.FieldErrors{forms.FormErrorKey: sinkFailureMessage}
		return c.Render(http.StatusServiceUnavailable, "", view.App(data))
	}
	if !outcome.Accepted() {
		data.Download = form
		data.DownloadErrors = outcome.Errors
		return c.Render(http.StatusUnprocessableEntity, "", view.App(data))
	}

	return h.accept(c, outcome, site.CloseDownload{})
}

func (h *FormHandler) accept(c echo.Context, outcome forms.Outcome, closeAction site.Action) error {
	if err := view.SetFlashSuccess(c, outcome.Confirmation); err != nil {
		return err
	}
	if _, err := view.Dispatch(c, closeAction); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, site.Root)
}
