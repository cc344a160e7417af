// Package forms implements the two lead modals: course registration and
// ebook download. It owns field validation, the confirmation text and the
// hand-off to a domain.LeadSink.
package forms

import (
	"strings"
)

// RegistrationForm is the enrollment modal's field set.
type RegistrationForm struct {
	FullName string `form:"fullName" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Phone    string `form:"phone" validate:"required,max=32"`
	Goals    string `form:"goals" validate:"max=1000"`
}

// DownloadForm is the ebook download modal's field set.
type DownloadForm struct {
	FullName string `form:"fullName" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Phone    string `form:"phone" validate:"required,max=32"`
}

// Normalize trims surrounding whitespace so a blank field counts as empty.
func (f RegistrationForm) Normalize() RegistrationForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Goals = strings.TrimSpace(f.Goals)
	return f
}

// Normalize trims surrounding whitespace so a blank field counts as empty.
func (f DownloadForm) Normalize() DownloadForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	return f
}
