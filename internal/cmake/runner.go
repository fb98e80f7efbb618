package cmake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes an Invocation and reports the exit code of the process.
//
// A non-zero exit code is not an error: err is only set when the process
// could not be started or waited on at all (binary not found, permission
// denied, ...).
type Runner interface {
	Run(ctx context.Context, dir string, inv Invocation) (exitCode int, err error)
}

// ExecRunner runs invocations as child processes with os/exec.
//
// The child inherits the standard streams by default so CMake output and
// interactive prompts of the native tool reach the user unchanged. No
// timeout is applied: Run blocks until the child exits.
type ExecRunner struct {
	// Stdout and Stderr are connected to the child. Nil means the
	// corresponding stream of the current process.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner bound to the process' standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes inv with dir as the working directory. An empty dir runs the
// child in the current working directory.
func (r *ExecRunner) Run(ctx context.Context, dir string, inv Invocation) (int, error) {
	// #nosec G204 -- the binary comes from configuration; arguments are
	// passed as a vector, never through a shell.
	cmd := exec.CommandContext(ctx, inv.Binary, inv.Args()...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// The command started but returned a non-zero exit code.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}

	return 1, fmt.Errorf("failed to run %s: %w", inv.Binary, err)
}
