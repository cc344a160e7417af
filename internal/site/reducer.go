package site

import "fmt"

// Action is a user intent raised by a page, the navigation shell or a modal.
type Action interface {
	fmt.Stringer
	apply(State) State
}

// Navigate selects a page. It always closes the mobile menu.
type Navigate struct{ Page PageID }

// ToggleMobileMenu opens or closes the mobile menu.
type ToggleMobileMenu struct{}

// OpenRegistration opens the enrollment modal, optionally for one course.
type OpenRegistration struct{ CourseID string }

// CloseRegistration closes the enrollment modal and forgets its course.
type CloseRegistration struct{}

// OpenDownload opens the ebook download modal.
type OpenDownload struct{}

// CloseDownload closes the ebook download modal.
type CloseDownload struct{}

func (a Navigate) apply(s State) State {
	s.Page = a.Page
	s.MobileMenuOpen = false
	return s
}

func (ToggleMobileMenu) apply(s State) State {
	s.MobileMenuOpen = !s.MobileMenuOpen
	return s
}

func (a OpenRegistration) apply(s State) State {
	s.RegistrationOpen = true
	s.SelectedCourse = a.CourseID
	return s
}

func (CloseRegistration) apply(s State) State {
	s.RegistrationOpen = false
	s.SelectedCourse = ""
	return s
}

func (OpenDownload) apply(s State) State {
	s.DownloadOpen = true
	return s
}

func (CloseDownload) apply(s State) State {
	s.DownloadOpen = false
	return s
}

func (a Navigate) String() string         { return "navigate:" + string(a.Page) }
func (ToggleMobileMenu) String() string   { return "toggle-mobile-menu" }
func (a OpenRegistration) String() string { return "open-registration:" + a.CourseID }
func (CloseRegistration) String() string  { return "close-registration" }
func (OpenDownload) String() string       { return "open-download" }
func (CloseDownload) String() string      { return "close-download" }

// Reduce returns the state that results from applying a to s. s is not
// modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
