package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: configuration errors, rendering errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: no ingredients left after dropping blanks and duplicates,
	// or invalid flag values.
	ExitUsage = 2

	// ExitInterrupted indicates the command was cancelled by the user.
	// Use for: ctrl+c during the simulated delay or an aborted prompt.
	ExitInterrupted = 130
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported to the user when Reported is set.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an exit code after it was reported
func NewExitError(code int, err error) *ExitCodeError {
	return &ExitCodeError{Code: code, Err: err, Reported: true}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
