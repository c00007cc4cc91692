// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested todo does not exist in the store.
// Adapters translate it into their protocol's not-found signal; it is never
// treated as a fatal error.
var ErrNotFound = errors.New("todo not found")

// ErrValidation is returned when input fails service-boundary validation.
var ErrValidation = errors.New("validation error")

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error using fmt.Errorf.
// This is a convenience function for creating errors with formatting.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join wraps multiple errors into a single error.
// This is a convenience wrapper around errors.Join (Go 1.20+).
func Join(errs ...error) error {
	return errors.Join(errs...)
}
