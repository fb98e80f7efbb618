//go:build unix

package cmake

import (
	"os/exec"
	"syscall"
)

// exitCode returns the exit status of the child. A child killed by a signal
// has no exit status; it is reported as 128+signal, the shell convention.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
