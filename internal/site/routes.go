package site

// Endpoints raised by the rendered pages. Every intent is a POST that
// redirects back to Root.
const (
	Root = "/"

	ActionNavigate          = "/actions/navigate"
	ActionToggleMenu        = "/actions/menu"
	ActionEnroll            = "/actions/enroll"
	ActionDownload          = "/actions/download"
	ActionCloseRegistration = "/actions/registration/close"
	ActionCloseDownload     = "/actions/download/close"

	FormRegistration = "/forms/registration"
	FormDownload     = "/forms/download"
)
