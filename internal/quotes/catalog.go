// Package quotes picks a quote of the day from a static catalog and tracks a
// browsing session over it.
package quotes

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrEmptyCatalog is returned when building a catalog with no quotes.
var ErrEmptyCatalog = errors.New("quote catalog is empty")

// Quote is an immutable text and author pair.
type Quote struct {
	ID     string
	Text   string
	Author string
}

// Catalog is a fixed, non-empty list of quotes with unique IDs.
type Catalog struct {
	quotes []Quote
	byID   map[string]int
}

// NewCatalog validates quotes and builds a Catalog over a copy of them.
func NewCatalog(quotes []Quote) (*Catalog, error) {
	if len(quotes) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		quotes: append([]Quote(nil), quotes...),
		byID:   make(map[string]int, len(quotes)),
	}
	for i, q := range c.quotes {
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quote id: %s", q.ID)
		}
		c.byID[q.ID] = i
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(quotes []Quote) *Catalog {
	c, err := NewCatalog(quotes)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of quotes.
func (c *Catalog) Len() int { return len(c.quotes) }

// At returns the quote at index i.
func (c *Catalog) At(i int) Quote { return c.quotes[i] }

// ByID returns the quote with the given ID.
func (c *Catalog) ByID(id string) (Quote, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Quote{}, false
	}
	return c.quotes[i], true
}

// DayOfYear returns the 1-based calendar day of date in its own location.
// January 1 is day 1.
func DayOfYear(date time.Time) int {
	return date.YearDay()
}

// DailyIndex returns the catalog index selected for date.
func (c *Catalog) DailyIndex(date time.Time) int {
	return DayOfYear(date) % len(c.quotes)
}

// Daily returns the quote of the day for date.
// The result depends only on the calendar date.
func (c *Catalog) Daily(date time.Time) Quote {
	return c.quotes[c.DailyIndex(date)]
}

// Random picks uniformly among quotes whose ID differs from excludeID.
// With a single quote, that quote is returned. An empty or unknown
// excludeID picks among all quotes.
func (c *Catalog) Random(rng *rand.Rand, excludeID string) Quote {
	if len(c.quotes) == 1 {
		return c.quotes[0]
	}
	skip, ok := c.byID[excludeID]
	if !ok {
		return c.quotes[rng.IntN(len(c.quotes))]
	}
	// Draw from the n-1 remaining slots and shift past the excluded one.
	i := rng.IntN(len(c.quotes) - 1)
	if i >= skip {
		i++
	}
	return c.quotes[i]
}

// FormatDate renders date as a long header, e.g. "October 14, 2026".
func FormatDate(date time.Time) string {
	return date.Format("January 2, 2006")
}
