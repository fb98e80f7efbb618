package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every RE_CMAKE_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CMAKE", "BUILD_DIR", "CACHE_DIR", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+k))
	}
}

// TestLoad_Defaults verifies the settings when nothing is overridden.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

// TestLoad_EnvOverrides checks that every setting is read from its
// RE_CMAKE_ environment variable.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RE_CMAKE_CMAKE", "/opt/cmake/bin/cmake")
	t.Setenv("RE_CMAKE_BUILD_DIR", "/work/build")
	t.Setenv("RE_CMAKE_CACHE_DIR", "/tmp/cache")
	t.Setenv("RE_CMAKE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/cmake/bin/cmake", cfg.CMake)
	assert.Equal(t, "/work/build", cfg.BuildDir)
	assert.Equal(t, "/tmp/cache", cfg.CacheDir)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

// TestLoad_InvalidLogLevel rejects unknown levels.
func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("RE_CMAKE_LOG_LEVEL", "chatty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RE_CMAKE_LOG_LEVEL")
}

// TestResolveBuildDir covers the override and the executable fallback.
func TestResolveBuildDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{BuildDir: dir}
	got, err := cfg.ResolveBuildDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	cfg = DefaultConfig()
	got, err = cfg.ResolveBuildDir()
	require.NoError(t, err)
	exe, err := os.Executable()
	require.NoError(t, err)
	exe, err = filepath.EvalSymlinks(exe)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), got)
}
