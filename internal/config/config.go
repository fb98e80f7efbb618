package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended (with an underscore) to every setting name to form
// its environment variable.
const EnvPrefix = "RE_CMAKE"

// Config holds the resolved settings.
type Config struct {
	// CMake is the build tool binary, looked up in PATH when not absolute.
	CMake string `mapstructure:"cmake"`

	// BuildDir is the working directory of every build tool invocation.
	// Empty means the directory containing the re-cmake executable.
	BuildDir string `mapstructure:"build_dir"`

	// CacheDir overrides the platform cache directory cleared by -Z.
	CacheDir string `mapstructure:"cache_dir"`

	// LogLevel is the minimum level of diagnostic messages on stderr.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the settings used when no environment override is set.
func DefaultConfig() *Config {
	return &Config{
		CMake:    "cmake",
		BuildDir: "",
		CacheDir: "",
		LogLevel: "warn",
	}
}

// Load reads the settings from the environment on top of DefaultConfig.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("cmake", defaults.CMake)
	v.SetDefault("build_dir", defaults.BuildDir)
	v.SetDefault("cache_dir", defaults.CacheDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CMake == "" {
		cfg.CMake = defaults.CMake
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s_LOG_LEVEL %q: %w", EnvPrefix, cfg.LogLevel, err)
	}

	return &cfg, nil
}

// Level returns the parsed LogLevel. Load has already validated it.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// ResolveBuildDir returns BuildDir when set, and otherwise the directory
// containing the running executable with symlinks resolved, so that a
// re-cmake linked from elsewhere still builds in its own directory.
func (c *Config) ResolveBuildDir() (string, error) {
	if c.BuildDir != "" {
		return filepath.Abs(c.BuildDir)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}
