package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/speakuppartners/site/internal/domain"
)

// Outcome is the result of one submit attempt.
//
// A rejected attempt carries Errors and leaves the modal open. An accepted
// one carries the Confirmation and asks for the modal to close.
type Outcome struct {
	Confirmation string
	Errors       FieldErrors
	Close        bool
}

// Accepted reports whether the submission went through.
func (o Outcome) Accepted() bool {
	return o.Close && len(o.Errors) == 0
}

// Submitter validates modal forms and hands accepted ones to a sink.
type Submitter struct {
	sink     domain.LeadSink
	validate *validator.Validate
	now      func() time.Time
}

// NewSubmitter creates a Submitter delivering to sink.
func NewSubmitter(sink domain.LeadSink) *Submitter {
	return &Submitter{
		sink:     sink,
		validate: NewValidator(),
		now:      time.Now,
	}
}

// SubmitRegistration processes the enrollment modal. course is nil when the
// modal was opened without one.
func (s *Submitter) SubmitRegistration(ctx context.Context, form RegistrationForm, course *domain.EnrollmentContext) (Outcome, error) {
	form = form.Normalize()
	if errs := validate(s.validate, form); len(errs) > 0 {
		return Outcome{Errors: errs}, nil
	}

	lead := s.newLead(domain.LeadRegistration, form.FullName, form.Email, form.Phone)
	lead.Goals = form.Goals
	if course != nil {
		lead.CourseID = course.CourseID
		lead.CourseTitle = course.Title
	}
	if err := s.sink.Submit(ctx, lead); err != nil {
		return Outcome{}, fmt.Errorf("submit registration lead: %w", err)
	}

	return Outcome{Confirmation: RegistrationConfirmation(form, course), Close: true}, nil
}

// SubmitDownload processes the ebook modal.
func (s *Submitter) SubmitDownload(ctx context.Context, form DownloadForm) (Outcome, error) {
	form = form.Normalize()
	if errs := validate(s.validate, form); len(errs) > 0 {
		return Outcome{Errors: errs}, nil
	}

	lead := s.newLead(domain.LeadDownload, form.FullName, form.Email, form.Phone)
	if err := s.sink.Submit(ctx, lead); err != nil {
		return Outcome{}, fmt.Errorf("submit download lead: %w", err)
	}

	return Outcome{Confirmation: DownloadConfirmation(form), Close: true}, nil
}

func (s *Submitter) newLead(kind domain.LeadKind, name, email, phone string) domain.Lead {
	return domain.Lead{
		ID:          uuid.New(),
		Kind:        kind,
		Name:        name,
		Email:       email,
		Phone:       phone,
		SubmittedAt: s.now().UTC(),
	}
}
