// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Analysis errors.
	ErrIncompleteLandmarks = errors.New("incomplete landmarks")
	ErrMissingFrontView    = errors.New("front view is required for body shape analysis")

	// Recommendation errors.
	ErrUnknownBodyShape = errors.New("unknown body shape")

	// Boundary errors.
	ErrInvalidEnum       = errors.New("invalid value")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMalformedInput    = errors.New("malformed input")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// InvalidEnumError wraps ErrInvalidEnum with the field name and the rejected value.
func InvalidEnumError(field, value string) error {
	return fmt.Errorf("%w for %s: %q", ErrInvalidEnum, field, value)
}

// IsInputError reports whether err was caused by bad caller input rather than an internal fault.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidEnum) ||
		errors.Is(err, ErrIncompleteLandmarks) ||
		errors.Is(err, ErrMissingFrontView) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedInput)
}
