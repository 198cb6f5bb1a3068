package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"daytask/internal/storage"
)

// StorageKey is the key-value slot holding the task snapshot.
const StorageKey = "tasks"

// Store owns the in-memory task list and mirrors it to a KV slot.
// Mutations return as soon as memory is updated; the write happens in the
// background and its failure is logged, never returned.
type Store struct {
	mu     sync.RWMutex
	tasks  []Task
	newID  func() string
	kv     storage.KV
	logger *slog.Logger
	w      *writer
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the task ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates an empty Store writing to kv.
// A nil logger discards log output.
func NewStore(kv storage.KV, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		tasks:  []Task{},
		newID:  NewID,
		kv:     kv,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.w = newWriter(kv, StorageKey, logger)
	return s
}

// Open creates a Store and loads the persisted snapshot.
func Open(ctx context.Context, kv storage.KV, logger *slog.Logger, opts ...Option) *Store {
	s := NewStore(kv, logger, opts...)
	s.Load(ctx)
	return s
}

// NewID returns a time-ordered random identifier (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load replaces the in-memory list with the persisted snapshot.
// A missing slot yields an empty list. An unreadable or malformed snapshot
// also yields an empty list and is logged.
func (s *Store) Load(ctx context.Context) {
	list := s.read(ctx)

	s.mu.Lock()
	s.tasks = list
	s.mu.Unlock()
}

func (s *Store) read(ctx context.Context) []Task {
	data, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("failed to read tasks, starting empty", "key", StorageKey, "err", err)
		return []Task{}
	}
	if !ok {
		s.logger.Debug("no stored tasks", "key", StorageKey)
		return []Task{}
	}

	list, dropped, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding malformed task snapshot", "key", StorageKey, "bytes", len(data), "err", err)
		return []Task{}
	}
	if dropped > 0 {
		s.logger.Warn("dropped tasks with duplicate ids", "key", StorageKey, "count", dropped)
	}
	s.logger.Debug("loaded tasks", "key", StorageKey, "count", len(list))
	return list
}

// Add appends a new open task with the trimmed title.
// ok is false, and nothing changes, if the title is empty after trimming.
func (s *Store) Add(title string) (t Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}

	s.mu.Lock()
	t = Task{ID: s.uniqueID(), Title: title}
	s.tasks = Append(s.tasks, t)
	s.persist()
	s.mu.Unlock()

	return t, true
}

// uniqueID draws IDs until one is not already in the list. Caller holds mu.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if _, exists := Find(s.tasks, id); !exists && id != "" {
			return id
		}
	}
}

// Toggle flips the completed flag of the task matching id.
// It reports whether a task matched. The list is persisted either way.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed bool
	s.tasks, changed = Toggle(s.tasks, id)
	s.persist()
	return changed
}

// Delete removes the task matching id.
// It reports whether a task matched. The list is persisted either way.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed bool
	s.tasks, changed = Remove(s.tasks, id)
	s.persist()
	return changed
}

// persist hands a snapshot to the background writer. Caller holds mu.
func (s *Store) persist() {
	data, err := Encode(s.tasks)
	if err != nil {
		s.logger.Warn("failed to encode tasks", "err", err)
		return
	}
	s.w.enqueue(data)
}

// Tasks returns a copy of the list in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Ordered returns the list in display order.
func (s *Store) Ordered() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Ordered(s.tasks)
}

// Get returns the task matching id.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Find(s.tasks, id)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Close waits for the pending write, then closes the KV.
// The Store must not be mutated after Close.
func (s *Store) Close() error {
	s.w.close()
	if err := s.kv.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
