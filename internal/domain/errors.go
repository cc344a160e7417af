package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for lookups and lead delivery.
var (
	ErrCourseNotFound  = errors.New("course not found in catalog")
	ErrUnknownPage     = errors.New("unknown page identifier")
	ErrSinkUnavailable = errors.New("lead submission sink unavailable")
)
