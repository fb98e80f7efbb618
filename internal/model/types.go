package model

// LocalInstallType selects which flavor of the local45 (Recon sandbox)
// install target is built. It is derived from the -d/-t flags.
type LocalInstallType string

const (
	// LocalInstallDebugging builds the sandbox plugin with debugging enabled.
	// It takes precedence over LocalInstallTesting when both flags are set.
	LocalInstallDebugging LocalInstallType = "debugging"

	// LocalInstallTesting builds the sandbox plugin in testing mode.
	LocalInstallTesting LocalInstallType = "testing"

	// LocalInstallDeployment is the default when neither -d nor -t is given.
	LocalInstallDeployment LocalInstallType = "deployment"
)

// String returns the string representation of LocalInstallType.
// The value is embedded verbatim in target names (jbox-l45-<type>-install-...).
func (t LocalInstallType) String() string {
	return string(t)
}

// GUIType selects the resolution of the GUI assets the render, preview,
// edit, install and local45 targets operate on.
type GUIType string

const (
	// GUIHiRes is the default high resolution GUI.
	GUIHiRes GUIType = "hi-res"

	// GUILowRes forces the legacy low resolution GUI (-l/--low-res).
	GUILowRes GUIType = "low-res"
)

// String returns the string representation of GUIType.
func (g GUIType) String() string {
	return string(g)
}

// BuildConfig is the value of the CMake --config flag. Multi-config
// generators (Xcode, Visual Studio) use it to pick the configuration,
// single-config generators ignore it.
type BuildConfig string

const (
	// BuildConfigDebug is used unless -R/--release is given.
	BuildConfigDebug BuildConfig = "Debug"

	// BuildConfigRelease is selected by -R/--release.
	BuildConfigRelease BuildConfig = "Release"
)

// String returns the string representation of BuildConfig.
func (c BuildConfig) String() string {
	return string(c)
}

// Options holds the boolean flags of a single invocation.
//
// The zero value is the default invocation: execute for real, no banner,
// deployment install type, hi-res GUI, Debug configuration.
type Options struct {
	// DryRun prints every constructed command instead of running it.
	DryRun bool

	// Verbose adds --verbose to each CMake invocation.
	Verbose bool

	// Banner prints a step banner before every command.
	Banner bool

	// Debugging selects the "debugging" local45 install type.
	Debugging bool

	// Testing selects the "testing" local45 install type.
	Testing bool

	// Release invokes CMake with --config Release instead of Debug.
	Release bool

	// LowRes selects the low resolution GUI targets.
	LowRes bool

	// ClearCache removes the platform cache directory before any command runs.
	ClearCache bool
}

// LocalInstallType derives the local45 install type. Debugging wins when
// both Debugging and Testing are set.
func (o Options) LocalInstallType() LocalInstallType {
	switch {
	case o.Debugging:
		return LocalInstallDebugging
	case o.Testing:
		return LocalInstallTesting
	default:
		return LocalInstallDeployment
	}
}

// GUIType derives the GUI resolution type.
func (o Options) GUIType() GUIType {
	if o.LowRes {
		return GUILowRes
	}
	return GUIHiRes
}

// BuildConfig derives the CMake configuration.
func (o Options) BuildConfig() BuildConfig {
	if o.Release {
		return BuildConfigRelease
	}
	return BuildConfigDebug
}

// Separator is the literal token splitting command tokens from the options
// forwarded to the native build tool.
const Separator = "--"

// SplitCommands splits positional arguments at the first Separator.
//
// Everything before the separator is returned as command tokens. The
// separator itself and everything after it are returned as native tool
// options: CMake's --build mode uses the same "--" to hand the remaining
// arguments to the native tool, so it has to be forwarded.
//
// When no separator is present, nativeOptions is nil.
func SplitCommands(args []string) (commands, nativeOptions []string) {
	for i, a := range args {
		if a == Separator {
			return args[:i], args[i:]
		}
	}
	return args, nil
}
