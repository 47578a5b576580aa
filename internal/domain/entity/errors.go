package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Validation errors are always detectable before persistence.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConflictError represents a uniqueness violation detected at persistence time,
// such as a duplicate slug or email. The orchestrating layer may retry with a
// disambiguated value or surface the conflict to the caller.
type ConflictError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the conflict error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on field '%s': %s", e.Field, e.Message)
}

// IsConflict reports whether err is a ConflictError, optionally on the given field.
// An empty field matches any conflict.
func IsConflict(err error, field string) bool {
	var ce *ConflictError
	if !errors.As(err, &ce) {
		return false
	}
	return field == "" || ce.Field == field
}
