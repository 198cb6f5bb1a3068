package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/tasks"
)

func init() {
	Register(&ToggleCmd{})
	Register(&RmCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Flip a task between open and completed" }
func (c *ToggleCmd) Usage() string     { return "daytask toggle <ref...>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	return runEach(cfg, store, args, store.Toggle, out, errOut)
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "daytask rm <ref...>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	return runEach(cfg, store, args, store.Delete, out, errOut)
}

// runEach is the shared implementation for toggle and rm.
// All refs are resolved before any task changes. IDs that match no task are skipped.
func runEach(cfg *config.Config, store *tasks.Store, args []string, apply func(id string) bool, out, errOut io.Writer) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ids, err := ResolveTaskRefs(store.Ordered(), refs)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	for _, id := range ids {
		apply(id)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
