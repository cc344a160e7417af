package forms

import (
	"fmt"

	"github.com/speakuppartners/site/internal/catalog"
	"github.com/speakuppartners/site/internal/domain"
)

// RegistrationConfirmation is the acknowledgment shown after an enrollment
// is accepted. The course clause is omitted when the modal had no course.
func RegistrationConfirmation(form RegistrationForm, course *domain.EnrollmentContext) string {
	if course == nil {
		return fmt.Sprintf("Terima kasih %s! Pendaftaran Anda berhasil. Tim kami akan menghubungi Anda dalam 1x24 jam.", form.FullName)
	}
	return fmt.Sprintf("Terima kasih %s! Pendaftaran Anda untuk kursus %s berhasil. Tim kami akan menghubungi Anda dalam 1x24 jam.", form.FullName, course.Title)
}

// DownloadConfirmation is the acknowledgment shown after an ebook request
// is accepted.
func DownloadConfirmation(form DownloadForm) string {
	return fmt.Sprintf("Terima kasih %s! Ebook preview %q telah dikirim ke email %s. Silakan cek inbox atau folder spam.",
		form.FullName, catalog.PreviewEbook.Title, form.Email)
}
