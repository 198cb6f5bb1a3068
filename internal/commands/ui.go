package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/quotes"
	"daytask/internal/tasks"
	"daytask/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return []string{"tui"} }
func (c *UICmd) Synopsis() string  { return "Open the interactive task and quote screens" }
func (c *UICmd) Usage() string     { return "daytask ui" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	session := quotes.NewSession(quotes.Default, time.Now(), nil)
	if err := tui.Run(ctx, tui.New(store, session, time.Now), out); err != nil {
		fmt.Fprintf(errOut, "error: terminal ui: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
