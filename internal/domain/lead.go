package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeadKind tells which modal produced a lead.
type LeadKind string

const (
	LeadRegistration LeadKind = "registration"
	LeadDownload     LeadKind = "download"
)

// Lead is the record handed to a LeadSink once a form passes validation.
type Lead struct {
	ID          uuid.UUID `json:"id"`
	Kind        LeadKind  `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Goals       string    `json:"goals,omitempty"`
	CourseID    string    `json:"course_id,omitempty"`
	CourseTitle string    `json:"course_title,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// LeadSink receives accepted form submissions. Implementations decide where
// a lead goes (a log line, a message bus, later a CRM).
type LeadSink interface {
	Submit(ctx context.Context, lead Lead) error
}
