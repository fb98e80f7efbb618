//go:build !unix

package cmake

import "os/exec"

// exitCode returns the exit status of the child.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
