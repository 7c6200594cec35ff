package cli

import (
	"fmt"
)

// UsageError signals that the user invoked a [Command] incorrectly, so its usage should be shown along with the error.
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

// Is matches any other *UsageError, so errors.Is(err, &UsageError{}) identifies the kind of error.
func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError] wrapping fmt.Errorf(format, args...).
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

func asUsageError(err error) error {
	if _, ok := err.(*UsageError); ok {
		return err
	}
	return &UsageError{wrapped: err}
}
