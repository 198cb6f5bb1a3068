// Package config handles XDG configuration directory and file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the application directory name.
	AppName = "daytask"

	// DataDirName is the directory holding file-backed key-value slots.
	DataDirName = "data"

	// DatabaseFile is the SQLite database filename.
	DatabaseFile = "daytask.db"

	// BackendEnv overrides the storage backend when --backend is not given.
	BackendEnv = "DAYTASK_BACKEND"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend selects the key-value storage implementation.
	Backend string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/daytask or $HOME/.config/daytask.
// If backend is empty, DAYTASK_BACKEND is consulted, then the file backend is used.
func New(configDir, backend string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	if backend == "" {
		backend = os.Getenv(BackendEnv)
	}
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendFile
	}
	switch backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}

	return &Config{Dir: dir, Backend: backend}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DataDir returns the directory used by the file backend.
func (c *Config) DataDir() string {
	return filepath.Join(c.Dir, DataDirName)
}

// DatabasePath returns the path to the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
