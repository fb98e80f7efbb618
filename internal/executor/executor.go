package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/recmake/re-cmake/internal/cmake"
	"github.com/recmake/re-cmake/internal/model"
	"github.com/recmake/re-cmake/internal/target"
)

// Executor turns command tokens into build tool invocations and runs them.
type Executor struct {
	// Options are the invocation-wide flags.
	Options model.Options

	// Table resolves tokens to targets. It must be built from Options.
	Table *target.Table

	// NativeOptions are appended to every invocation.
	NativeOptions []string

	// Binary is the build tool executable.
	Binary string

	// Dir is the working directory of every invocation.
	Dir string

	// Runner starts the build tool. It is never called in dry-run mode.
	Runner cmake.Runner

	// Out receives banners and dry-run command lines.
	Out io.Writer

	// Logger receives diagnostics. Nil disables them.
	Logger *log.Logger
}

// New creates an Executor for opts with a freshly built target table.
func New(opts model.Options, binary, dir string, nativeOptions []string, runner cmake.Runner, out io.Writer) *Executor {
	return &Executor{
		Options:       opts,
		Table:         target.NewTable(opts),
		NativeOptions: nativeOptions,
		Binary:        binary,
		Dir:           dir,
		Runner:        runner,
		Out:           out,
	}
}

// Invocation returns the build tool invocation for a single token.
func (e *Executor) Invocation(command string) cmake.Invocation {
	return cmake.NewInvocation(e.Binary, e.Options, e.Table.Resolve(command), e.NativeOptions)
}

// Run executes commands in order.
//
// It returns a *model.StepFailedError for the first step whose process
// exits with a non-zero code, and a *model.CLIError when a process cannot
// be started. No step after a failure is attempted.
func (e *Executor) Run(ctx context.Context, commands []string) error {
	for i, command := range commands {
		step := i + 1

		if e.Options.Banner {
			writeBanner(e.Out, step, command)
		}

		inv := e.Invocation(command)

		if e.Options.DryRun {
			fmt.Fprintln(e.Out, inv.String())
			continue
		}

		e.debug("running step", "step", step, "command", command, "dir", e.Dir, "argv", inv.String())

		code, err := e.Runner.Run(ctx, e.Dir, inv)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("Command %q [%s] could not be started", command, inv.String()), err)
		}
		if code != 0 {
			return &model.StepFailedError{
				Command:    command,
				Invocation: inv.Argv(),
				ExitCode:   code,
			}
		}
	}
	return nil
}

func (e *Executor) debug(msg string, keyvals ...any) {
	if e.Logger != nil {
		e.Logger.Debug(msg, keyvals...)
	}
}
