// Package site holds the root controller of the website: which page is
// shown, which modals are open and which course an open registration modal
// is about. State is an immutable value; every change goes through Reduce.
package site

import (
	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
)

// State is everything the root controller owns for one visitor.
type State struct {
	Page             PageID
	MobileMenuOpen   bool
	RegistrationOpen bool
	DownloadOpen     bool
	// SelectedCourse is a catalog course ID, or "" when the registration
	// modal is closed or was opened without a course.
	SelectedCourse string
}

// Initial is the state of a first visit.
func Initial() State {
	return State{Page: PageHome}
}

// IsActive reports whether p is the page currently shown.
func (s State) IsActive(p PageID) bool {
	return s.Page == p
}

// Validate normalises a state decoded from an untrusted source, such as a
// session cookie written by an older build.
func (s State) Validate() State {
	if _, err := ParsePage(string(s.Page)); err != nil {
		s.Page = PageHome
	}
	if !s.RegistrationOpen {
		s.SelectedCourse = ""
	}
	if s.SelectedCourse != "" {
		if _, err := catalog.CourseByID(s.SelectedCourse); err != nil {
			s.SelectedCourse = ""
		}
	}
	return s
}

// Enrollment is the course context of an open registration modal, or nil
// when the modal is closed or not about a specific course.
func (s State) Enrollment() *domain.EnrollmentContext {
	if !s.RegistrationOpen || s.SelectedCourse == "" {
		return nil
	}
	course, err := catalog.CourseByID(s.SelectedCourse)
	if err != nil {
		return nil
	}
	ec := course.EnrollmentContext()
	return &ec
}
