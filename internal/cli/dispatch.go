// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"daytask/internal/commands"
	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/storage"
	"daytask/internal/tasks"
)

// StoreFactory opens the task store for cfg.
// Used to inject the backend during dispatch.
type StoreFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*tasks.Store, error)

// OpenStore is the production StoreFactory: it opens the configured backend
// and loads the saved task list.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*tasks.Store, error) {
	kv, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	return tasks.Open(ctx, kv, logger), nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var backend string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&backend, "backend", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	positionalArgs, err := parseInterspersed(fs, args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	cfg, err := config.New(configDir, backend)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := NewLogger(errOut, debug)
	logger.Debug("dispatch", "command", cmd.Name(), "backend", cfg.Backend, "dir", cfg.Dir)

	var store *tasks.Store
	if cmd.NeedsStore() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: storage error: no backend configured")
			return exitcode.StorageError
		}
		store, err = d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close task store", "error", err)
			}
		}()
	}

	return cmd.Run(ctx, cfg, store, positionalArgs, out, errOut)
}

// parseInterspersed parses flags anywhere in args, so "add Buy milk --quiet"
// treats --quiet as a flag. Everything after a "--" terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + name
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + name
	}

	return errStr
}

// NewLogger returns the process logger. Warnings and errors go to w;
// debug enables everything.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
