package model

import (
	"fmt"
	"strings"
)

// ExitCode defines the process exit codes produced by the CLI itself.
// A failing build step exits with the external tool's own code instead.
type ExitCode int

const (
	// ExitSuccess indicates every step completed, or help was displayed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error, such as a filesystem
	// error while clearing the cache or a build tool that could not be started.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates a malformed or unknown flag.
	ExitUsageError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// StepFailedError reports a build step whose external process exited with a
// non-zero code. The CLI exits with ExitCode unchanged.
type StepFailedError struct {
	// Command is the original command token as typed by the user.
	Command string

	// Invocation is the full argument vector, binary included.
	Invocation []string

	// ExitCode is the exit code of the external process.
	ExitCode int
}

// Error formats the failure the way it is printed on stderr.
func (e *StepFailedError) Error() string {
	return fmt.Sprintf("Command %q [%s] failed with error code %d",
		e.Command, strings.Join(e.Invocation, " "), e.ExitCode)
}
