// Package main is the entry point for the re-cmake CLI.
//
// re-cmake is meant to live in (or be linked from) a CMake build directory:
// every build command runs with that directory as its working directory,
// whatever the caller's current directory is. All functionality is in the
// internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"context"

	"github.com/recmake/re-cmake/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// No signal handling: an interrupt reaches cmake through the terminal's
	// process group and its exit code is reported like any other failure.
	cli.Execute(context.Background(), cli.NewRootCommand())
}
