package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = Failure of any kind, including bad arguments and unexpected I/O errors
const (
	ExitSuccess   = 0
	ExitUserError = 1
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for a failed command (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping the domain error that caused it.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// cobra usage errors and anything else untyped
	return ExitUserError
}
