package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"daytask/internal/config"
	"daytask/internal/exitcode"
	"daytask/internal/output"
	"daytask/internal/quotes"
	"daytask/internal/tasks"
)

// DateLayout is the --date flag format.
const DateLayout = "2006-01-02"

func init() {
	Register(&QuoteCmd{})
}

// QuoteCmd implements the quote command.
type QuoteCmd struct {
	date   string
	random bool

	now func() time.Time
	rng *rand.Rand
}

// SetNow overrides the clock (for testing).
func (c *QuoteCmd) SetNow(now func() time.Time) {
	c.now = now
}

// SetRand overrides the random source (for testing).
func (c *QuoteCmd) SetRand(rng *rand.Rand) {
	c.rng = rng
}

func (c *QuoteCmd) Name() string      { return "quote" }
func (c *QuoteCmd) Aliases() []string { return nil }
func (c *QuoteCmd) Synopsis() string  { return "Print the quote of the day" }
func (c *QuoteCmd) Usage() string     { return "daytask quote [--date YYYY-MM-DD] [--random]" }
func (c *QuoteCmd) NeedsStore() bool  { return false }

func (c *QuoteCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
	fs.BoolVar(&c.random, "random", false, "")
}

func (c *QuoteCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	date := now()
	if c.date != "" {
		d, err := time.ParseInLocation(DateLayout, c.date, time.Local)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid date: %s (want YYYY-MM-DD)\n", c.date)
			return exitcode.UserError
		}
		date = d
	}

	q := quotes.Default.Daily(date)
	if c.random {
		rng := c.rng
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		// Same as a refresh: anything but the quote of the day.
		q = quotes.Default.Random(rng, q.ID)
	}

	output.FormatQuote(out, date, q)
	return exitcode.Success
}
