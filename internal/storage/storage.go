// Package storage provides the key-value slots that hold persisted snapshots.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"daytask/internal/config"
)

// ErrInvalidKey is returned for empty keys or keys that would escape the store.
var ErrInvalidKey = errors.New("invalid key")

// KV is a whole-value key-value store.
// Values are read and replaced wholesale; there is no partial update.
type KV interface {
	// Get returns the value stored under key.
	// ok is false if nothing has been stored under key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the store.
	Close() error
}

// Open returns the backend selected by cfg.Backend.
func Open(cfg *config.Config) (KV, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile, "":
		return NewFile(cfg.DataDir())
	case config.BackendSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config dir: %w", err)
		}
		return NewSQLite(cfg.DatabasePath())
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
