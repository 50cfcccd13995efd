package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrMalformedID = errors.New("invalid mentor id format")
	ErrNotFound    = errors.New("mentor not found")
	// ErrStoreUnavailable marks failures of the backing store itself.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError lists the required inputs that were missing or empty.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("missing required field: %s", e.Fields[0])
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
