package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NavigateRequest is the body of POST /actions/navigate.
type NavigateRequest struct {
	Page string `form:"page" validate:"required,max=32"`
}

// EnrollRequest is the body of POST /actions/enroll. An empty Course opens
// the registration modal without a specific course.
type EnrollRequest struct {
	Course string `form:"course" validate:"omitempty,max=64"`
}
