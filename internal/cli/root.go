// Package cli implements the cobra-based command line of re-cmake.
//
// re-cmake has no subcommands: the root command takes the flags and a list
// of command tokens, optionally followed by "--" and options forwarded to
// the native build tool. This file defines the root command, its flags and
// the translation of errors into process exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/recmake/re-cmake/internal/cache"
	"github.com/recmake/re-cmake/internal/cmake"
	"github.com/recmake/re-cmake/internal/config"
	"github.com/recmake/re-cmake/internal/executor"
	"github.com/recmake/re-cmake/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Dependencies are the collaborators of the root command that touch the
// outside world. Tests replace them with fakes.
type Dependencies struct {
	// Runner starts the build tool.
	Runner cmake.Runner

	// LoadConfig returns the settings of this run.
	LoadConfig func() (*config.Config, error)

	// CacheEnv is used to compute the platform cache directory.
	CacheEnv cache.Env
}

// DefaultDependencies returns the production collaborators.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Runner:     cmake.NewExecRunner(),
		LoadConfig: config.Load,
		CacheEnv:   cache.SystemEnv(),
	}
}

// NewRootCommand creates the root cobra command wired to the real
// environment.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(DefaultDependencies())
}

// NewRootCommandWith creates the root cobra command using deps.
func NewRootCommandWith(deps Dependencies) *cobra.Command {
	opts := &model.Options{}

	rootCmd := &cobra.Command{
		Use:   "re-cmake [flags] <command> [<command> ...] [-- [native-options]]",
		Short: "Build, install and validate a Rack Extension through CMake",
		Long:  longHelp(),

		// Tokens are free-form: unknown ones are CMake targets.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error;
		// only flag errors print it (see the flag error func below).
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// HandleError formats them.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, *opts, restoreSeparator(cmd, args))
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Dry run (prints what it is going to do)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose build")
	flags.BoolVarP(&opts.Banner, "banner", "b", false, "Display a banner before every command")
	flags.BoolVarP(&opts.Debugging, "debugging", "d", false, "Use 'Debugging' for local45 command")
	flags.BoolVarP(&opts.Testing, "testing", "t", false, "Use 'Testing' for local45 command")
	flags.BoolVarP(&opts.Release, "release", "R", false, "Invoke CMake in Release mode (for multi-config generators)")
	flags.BoolVarP(&opts.LowRes, "low-res", "l", false, "Forces low res build")
	flags.BoolVarP(&opts.ClearCache, "clear-cache", "Z", false, "Clears the Recon GUI cache before running any command")

	// Flags are only recognized before the first command token: everything
	// from there on is a command or a native tool option.
	flags.SetInterspersed(false)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
	})

	return rootCmd
}

// restoreSeparator puts back a "--" that the flag parser consumed. This only
// happens when "--" comes before the first command token; later ones stay
// in args because flag parsing stops at the first positional.
func restoreSeparator(cmd *cobra.Command, args []string) []string {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args
	}
	restored := make([]string, 0, len(args)+1)
	restored = append(restored, args[:dash]...)
	restored = append(restored, model.Separator)
	return append(restored, args[dash:]...)
}

// run is the orchestration of a single invocation:
//  1. Split command tokens from native tool options
//  2. Print help when there is nothing to do
//  3. Load configuration and set up logging
//  4. Clear the cache directory if requested
//  5. Run every command in order
func run(cmd *cobra.Command, deps Dependencies, opts model.Options, args []string) error {
	commands, nativeOptions := model.SplitCommands(args)
	if len(commands) == 0 {
		return cmd.Help()
	}

	cfg, err := deps.LoadConfig()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load configuration", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Level())

	if opts.ClearCache {
		if err := clearCache(cmd.OutOrStdout(), logger, deps.CacheEnv, cfg, opts.DryRun); err != nil {
			return err
		}
	}

	buildDir, err := cfg.ResolveBuildDir()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to determine build directory", err)
	}
	logger.Debug("resolved build directory", "dir", buildDir)

	ex := executor.New(opts, cfg.CMake, buildDir, nativeOptions, deps.Runner, cmd.OutOrStdout())
	ex.Logger = logger
	return ex.Run(cmd.Context(), commands)
}

// clearCache removes (or, in dry-run mode, prints the removal of) the cache
// directory. The directory comes from configuration when overridden.
func clearCache(out io.Writer, logger *log.Logger, env cache.Env, cfg *config.Config, dryRun bool) error {
	dir := cfg.CacheDir
	if dir == "" {
		var err error
		dir, err = cache.Dir(env)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to locate cache directory", err)
		}
	}

	cleaner := &cache.Cleaner{DryRun: dryRun, Out: out, Logger: logger}
	if err := cleaner.Clear(dir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to clear cache", err)
	}
	return nil
}

// newLogger creates the diagnostics logger. Diagnostics never go to stdout,
// which carries the dry-run output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "re-cmake",
	})
}

// Execute runs the root command and exits the process with the code
// returned by HandleError.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	err := rootCmd.ExecuteContext(ctx)
	os.Exit(HandleError(err, rootCmd.ErrOrStderr()))
}

// HandleError prints err to stderr and returns the process exit code:
//   - nil: 0
//   - *model.StepFailedError: the failing step's own exit code
//   - *model.CLIError: its Code
//   - anything else: 1
func HandleError(err error, stderr io.Writer) int {
	if err == nil {
		return int(model.ExitSuccess)
	}

	var stepErr *model.StepFailedError
	if errors.As(err, &stepErr) {
		printError(stderr, stepErr.Error(), nil)
		return stepErr.ExitCode
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Message, cliErr.Err)
		return int(cliErr.Code)
	}

	printError(stderr, err.Error(), nil)
	return int(model.ExitGeneralError)
}

// printError writes "Error: <message>" to w, with the underlying error
// appended when present. The prefix is styled only on color terminals.
func printError(w io.Writer, message string, underlying error) {
	prefix := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#EF4444")).
		Render("Error:")

	if underlying != nil {
		fmt.Fprintf(w, "%s %s: %v\n", prefix, message, underlying)
	} else {
		fmt.Fprintf(w, "%s %s\n", prefix, message)
	}
}
