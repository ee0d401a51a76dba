package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTitle is returned when a task title is empty or whitespace.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNullField is returned when a patch sets a non-nullable field to null.
	ErrNullField = errors.New("field cannot be null")

	// ErrInvalidTimestamps is returned when updated_at precedes created_at.
	ErrInvalidTimestamps = errors.New("updated_at cannot precede created_at")
)

// ValidationError describes a single invalid field. It unwraps to the
// underlying cause so callers can match on ErrValidation or the specific
// sentinel with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns both the generic ErrValidation and the specific cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

// NewValidationError creates a ValidationError for the named field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
