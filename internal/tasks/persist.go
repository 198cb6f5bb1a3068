package tasks

import (
	"context"
	"log/slog"
	"sync"

	"daytask/internal/storage"
)

// writer persists snapshots on a background goroutine.
// Only the most recent pending snapshot is written; older ones are superseded.
type writer struct {
	kv     storage.KV
	key    string
	logger *slog.Logger

	mu      sync.Mutex
	pending []byte
	dirty   bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

func newWriter(kv storage.KV, key string, logger *slog.Logger) *writer {
	w := &writer{
		kv:     kv,
		key:    key,
		logger: logger,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue schedules data to be written and returns immediately.
func (w *writer) enqueue(data []byte) {
	w.mu.Lock()
	w.pending = data
	w.dirty = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

func (w *writer) flush() {
	w.mu.Lock()
	data, dirty := w.pending, w.dirty
	w.pending, w.dirty = nil, false
	w.mu.Unlock()

	if !dirty {
		return
	}
	if err := w.kv.Set(context.Background(), w.key, data); err != nil {
		w.logger.Warn("failed to persist tasks", "key", w.key, "bytes", len(data), "err", err)
		return
	}
	w.logger.Debug("persisted tasks", "key", w.key, "bytes", len(data))
}

// close writes any pending snapshot and stops the goroutine.
func (w *writer) close() {
	w.once.Do(func() { close(w.quit) })
	<-w.done
}
