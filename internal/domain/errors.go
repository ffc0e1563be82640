// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyName is returned when a user's name is missing or blank.
	ErrEmptyName = errors.New("name is required")

	// ErrEmptyEmail is returned when a user's email is missing or blank.
	ErrEmptyEmail = errors.New("email is required")

	// ErrEmptyPassword is returned when a required password is missing or blank.
	ErrEmptyPassword = errors.New("password is required")

	// ErrPasswordTooShort is returned when a password doesn't meet the
	// minimum length requirement.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)

// ValidationError wraps a domain error with the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
