package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation before reaching
	// the store. All request-shape errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a path identifier is not an integer.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidSort is returned when sort_by is not a whitelisted column.
	ErrInvalidSort = fmt.Errorf("%w: invalid sort column", ErrValidation)

	// ErrInvalidOrder is returned when order is neither ASC nor DESC.
	ErrInvalidOrder = fmt.Errorf("%w: invalid sort order", ErrValidation)

	// ErrInvalidVoteDelta is returned when inc_votes is present but not an integer.
	ErrInvalidVoteDelta = fmt.Errorf("%w: invalid vote delta", ErrValidation)

	// ErrMissingField is returned when a required payload field is absent or empty.
	ErrMissingField = fmt.Errorf("%w: missing required field", ErrValidation)

	// ErrInvalidFormat is returned when a request body is not well-formed JSON.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrValidation)
)

// ValidationError describes which field failed validation and why.
// It unwraps to the sentinel passed at construction so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
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
