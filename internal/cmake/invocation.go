package cmake

import (
	"strings"

	"github.com/recmake/re-cmake/internal/model"
)

// DefaultBinary is the build tool executed when no override is configured.
const DefaultBinary = "cmake"

// Invocation is a single `cmake --build` call for one target.
type Invocation struct {
	// Binary is the cmake executable name or path.
	Binary string

	// Verbose adds --verbose.
	Verbose bool

	// Config is the value of --config.
	Config model.BuildConfig

	// Target is the value of --target.
	Target string

	// NativeOptions are appended verbatim after all other arguments.
	// When non-empty they start with the "--" separator.
	NativeOptions []string
}

// NewInvocation creates the invocation for target using the verbose and
// release flags of opts.
func NewInvocation(binary string, opts model.Options, target string, nativeOptions []string) Invocation {
	if binary == "" {
		binary = DefaultBinary
	}
	return Invocation{
		Binary:        binary,
		Verbose:       opts.Verbose,
		Config:        opts.BuildConfig(),
		Target:        target,
		NativeOptions: nativeOptions,
	}
}

// Args returns the arguments passed to Binary, in order:
//
//	--build . [--verbose] --config <cfg> --target <target> [native options...]
func (i Invocation) Args() []string {
	args := make([]string, 0, 8+len(i.NativeOptions))
	args = append(args, "--build", ".")
	if i.Verbose {
		args = append(args, "--verbose")
	}
	args = append(args, "--config", i.Config.String(), "--target", i.Target)
	args = append(args, i.NativeOptions...)
	return args
}

// Argv returns the full command line, binary first.
func (i Invocation) Argv() []string {
	return append([]string{i.Binary}, i.Args()...)
}

// String returns the command line joined with single spaces. No quoting is
// applied; this is the format printed in dry-run mode and in error messages.
func (i Invocation) String() string {
	return strings.Join(i.Argv(), " ")
}
