// Package errors provides sentinel errors for the modsmith CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrMissingField indicates a required generation field was not supplied.
	ErrMissingField = errors.New("missing required field")

	// ErrValidation indicates a supplied value failed identifier validation.
	ErrValidation = errors.New("validation error")

	// ErrIO indicates a filesystem operation failed during emission.
	ErrIO = errors.New("io error")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending filesystem path (optional).
	Location string

	// Field is the request field name for resolution errors (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewMissingFieldError creates an error for a required field that was not supplied.
func NewMissingFieldError(field, hint string) error {
	return &DetailError{
		Type:    "missing required field",
		Message: fmt.Sprintf("required field %q was not provided", field),
		Field:   field,
		Hint:    hint,
		Cause:   ErrMissingField,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewConflictError creates an error for a target path that collides with
// existing content. Conflicts abort before any write happens.
func NewConflictError(message, location, hint string) error {
	return &DetailError{
		Type:     "target conflict",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrIO,
	}
}

// NewIOError creates an error for a failed filesystem operation.
// Location carries the offending path.
func NewIOError(message, location string, cause error) error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  message,
		Location: location,
		Cause:    errors.Join(ErrIO, cause),
	}
}
