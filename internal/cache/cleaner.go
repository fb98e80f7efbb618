package cache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// subPath is the vendor/product location of the cache below the platform's
// per-user cache directory.
var subPath = []string{"Propellerhead Software", "RackExtensionsRecon", "GUICache"}

// Env abstracts the process environment so Dir can be exercised for every
// platform from any platform.
type Env struct {
	// GOOS is the target operating system (runtime.GOOS values).
	GOOS string

	// Getenv looks up an environment variable.
	Getenv func(string) string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir func() (string, error)
}

// SystemEnv returns the Env of the running process.
func SystemEnv() Env {
	return Env{
		GOOS:        runtime.GOOS,
		Getenv:      os.Getenv,
		UserHomeDir: os.UserHomeDir,
	}
}

// Dir computes the cache directory:
//
//   - windows: %LOCALAPPDATA%\Propellerhead Software\RackExtensionsRecon\GUICache
//   - darwin:  ~/Library/Caches/Propellerhead Software/RackExtensionsRecon/GUICache
//   - others:  ~/.cache/Propellerhead Software/RackExtensionsRecon/GUICache
func Dir(env Env) (string, error) {
	var base string

	switch env.GOOS {
	case "windows":
		base = env.Getenv("LOCALAPPDATA")
		if base == "" {
			return "", errors.New("LOCALAPPDATA is not set")
		}
	case "darwin":
		home, err := env.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Caches")
	default:
		home, err := env.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}

	return filepath.Join(append([]string{base}, subPath...)...), nil
}

// Cleaner removes a cache directory.
type Cleaner struct {
	// DryRun prints the removal to Out instead of performing it.
	DryRun bool

	// Out receives the dry-run line.
	Out io.Writer

	// Logger receives diagnostics. Nil disables them.
	Logger *log.Logger
}

// Clear recursively removes dir. A directory that does not exist is not an
// error and nothing is printed or removed. Any other filesystem error is
// returned as is.
func (c *Cleaner) Clear(dir string) error {
	if _, err := os.Lstat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.debug("cache directory does not exist, nothing to clear", "dir", dir)
			return nil
		}
		return fmt.Errorf("failed to inspect cache directory %s: %w", dir, err)
	}

	if c.DryRun {
		fmt.Fprintf(c.Out, "rm -rf %s\n", dir)
		return nil
	}

	c.debug("clearing cache directory", "dir", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove cache directory %s: %w", dir, err)
	}
	return nil
}

func (c *Cleaner) debug(msg string, keyvals ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, keyvals...)
	}
}
