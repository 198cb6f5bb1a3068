package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/tasks"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// SetRegistry sets the registry listed by help (for testing).
func (c *HelpCmd) SetRegistry(r *Registry) {
	c.registry = r
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "daytask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  daytask                        List tasks")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, cmd := range registry.All() {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), synopsis)
	}
	tw.Flush()

	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Task references:
  <n>              Number shown by list
  <id>             Task ID shown by list --ids

Common flags:
  --config <dir>   Override config directory
  --backend <name> Storage backend: file, sqlite, memory (env DAYTASK_BACKEND)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
