package services

import (
	"errors"
	"fmt"
)

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, referenced row
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries the per-field messages of a failed save. It wraps
// ErrValidation so callers can errors.Is against the sentinel and still
// unpack the field map for the response body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d field(s)", ErrValidation, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
