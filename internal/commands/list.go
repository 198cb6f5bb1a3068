package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/output"
	"daytask/internal/tasks"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `daytask` (no args) and `daytask list`.
type ListCmd struct {
	showIDs bool
	open    bool
}

// SetShowIDs toggles the ID column (for testing).
func (c *ListCmd) SetShowIDs(show bool) {
	c.showIDs = show
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "daytask list [--ids] [--open]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.showIDs, "ids", false, "")
	fs.BoolVar(&c.open, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	ordered := store.Ordered()
	printed := 0
	for i, task := range ordered {
		if c.open && task.Completed {
			// Completed tasks sort last, so nothing open follows.
			break
		}
		// Numbers always match the full display order so refs stay valid.
		if c.showIDs {
			output.FormatTaskWithID(out, i+1, task)
		} else {
			output.FormatTask(out, i+1, task)
		}
		printed++
	}

	if printed == 0 && !cfg.Quiet {
		fmt.Fprintln(out, output.EmptyList)
	}
	return exitcode.Success
}
