package cli

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// UserError is an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// WrapUserError wraps err with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// IsUserError reports whether err wraps a *UserError.
func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// Suggestion returns the suggestion attached to a UserError, if any.
func Suggestion(err error) string {
	var e *UserError
	if errors.As(err, &e) {
		return e.Suggestion
	}
	return ""
}

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case IsUserError(err):
		return ExitUser
	default:
		return ExitSystem
	}
}
