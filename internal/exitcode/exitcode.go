// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad task reference).
	UserError = 1

	// ConfigError indicates an invalid configuration (unknown backend, bad config dir).
	ConfigError = 2

	// StorageError indicates the key-value store could not be opened.
	StorageError = 3
)
