package quotes

import (
	"math/rand/v2"
	"slices"
	"time"
)

// MaxHistory bounds the number of remembered quote IDs.
const MaxHistory = 8

// Session is the state of one quote-browsing session. Nothing in it is persisted.
type Session struct {
	catalog *Catalog
	rng     *rand.Rand
	current Quote
	history []string // most recent first
	saved   []string // most recently toggled first
}

// NewSession starts a session showing the quote of the day for now.
// A nil rng uses a randomly seeded source.
func NewSession(catalog *Catalog, now time.Time, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		catalog: catalog,
		rng:     rng,
		current: catalog.Daily(now),
	}
}

// Current returns the quote on display.
func (s *Session) Current() Quote { return s.current }

// History returns the remembered quote IDs, most recent first.
func (s *Session) History() []string { return slices.Clone(s.history) }

// Saved returns the saved quote IDs, most recently toggled first.
func (s *Session) Saved() []string { return slices.Clone(s.saved) }

// IsSaved reports whether the current quote is saved.
func (s *Session) IsSaved() bool { return slices.Contains(s.saved, s.current.ID) }

// Refresh remembers the current quote and switches to a different random one.
func (s *Session) Refresh() Quote {
	s.push(s.current.ID)
	s.current = s.catalog.Random(s.rng, s.current.ID)
	return s.current
}

// ShowDaily remembers the current quote and switches to the quote of the day for now.
func (s *Session) ShowDaily(now time.Time) Quote {
	s.push(s.current.ID)
	s.current = s.catalog.Daily(now)
	return s.current
}

// Back pops the most recent history entry and shows that quote.
// If the entry no longer resolves, it is still popped and the current quote stays.
// ok is false if the history was empty.
func (s *Session) Back() (q Quote, ok bool) {
	if len(s.history) == 0 {
		return s.current, false
	}
	id := s.history[0]
	s.history = s.history[1:]
	if prev, found := s.catalog.ByID(id); found {
		s.current = prev
	}
	return s.current, true
}

// ToggleSaved saves the current quote, or unsaves it if already saved.
// It reports whether the quote is saved afterwards.
func (s *Session) ToggleSaved() bool {
	id := s.current.ID
	if i := slices.Index(s.saved, id); i >= 0 {
		s.saved = slices.Delete(s.saved, i, i+1)
		return false
	}
	s.saved = slices.Insert(s.saved, 0, id)
	return true
}

func (s *Session) push(id string) {
	s.history = slices.Insert(s.history, 0, id)
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}
}
