// Package common defines shared sentinel errors used across the server,
// the HTTP boundary and the CLI client. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")

	// Staff errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// FieldError ties a validation sentinel to the request field that caused it.
type FieldError struct {
	Field string
	Err   error
}

// MissingField reports that a required field was absent or empty.
func MissingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

// InvalidField reports that a field was present but could not be used.
func InvalidField(field string) error {
	return &FieldError{Field: field, Err: ErrInvalidField}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
