// Package common defines shared sentinel errors and error types used across
// Taskdesk components. Callers match sentinels with errors.Is and typed
// errors with errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// Auth errors.
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	// Task errors.
	ErrNotFound = errors.New("not found")

	// Storage errors.
	ErrCorrupted = errors.New("corrupted data")
)

// ValidationError reports a single violated input rule. Field names the
// offending input so the presentation layer can target focus and feedback.
type ValidationError struct {
	Field string
	Rule  string
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError reports a failed storage write. The in-memory state the
// write was meant to capture is unaffected; callers surface the message to
// the user and do not retry.
type PersistenceError struct {
	Path string
	Err  error
}

func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
