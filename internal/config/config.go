// Package config resolves runtime settings from defaults, environment
// variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvCatalog = "BIZCHECK_CATALOG"
	EnvLogFile = "BIZCHECK_LOG_FILE"
	EnvVerbose = "BIZCHECK_VERBOSE"
)

// Config holds the process-wide settings.
type Config struct {
	// CatalogPath overrides the built-in catalog with a YAML file. Empty uses
	// the embedded catalog.
	CatalogPath string

	// LogFile is where structured logs go. The terminal belongs to the UI,
	// so logs never go to stdout/stderr. Empty disables logging.
	LogFile string

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with the embedded catalog and the default
// log location.
func DefaultConfig() Config {
	return Config{
		LogFile: DefaultLogPath(),
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. A value that cannot be parsed is an error.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvCatalog); p != "" {
		cfg.CatalogPath = p
	}
	if p, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = p
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: want a boolean", EnvVerbose, v)
		}
		cfg.Verbose = b
	}

	return cfg, nil
}

// Validate checks that configured paths are usable.
func (c Config) Validate() error {
	if c.CatalogPath != "" {
		info, err := os.Stat(c.CatalogPath)
		if err != nil {
			return fmt.Errorf("catalog file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("catalog file %s is a directory", c.CatalogPath)
		}
	}
	return nil
}

// DefaultLogPath returns $XDG_STATE_HOME/bizcheck/bizcheck.log, falling back
// to ~/.local/state. Returns "" if no home directory can be resolved.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "bizcheck", "bizcheck.log")
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
