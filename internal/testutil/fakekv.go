// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"daytask/internal/storage"
)

// ErrInjected is the default error returned by a failing FakeKV.
var ErrInjected = errors.New("injected storage failure")

// FakeKV is an in-memory storage.KV with error injection and write counting.
type FakeKV struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int
	closed bool

	// Error injection for testing
	GetErr   error
	SetErr   error
	CloseErr error
}

// NewFakeKV creates an empty FakeKV.
func NewFakeKV() *FakeKV {
	return &FakeKV{values: make(map[string][]byte)}
}

// Put stores a value directly, bypassing SetErr and the write counter.
func (f *FakeKV) Put(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = append([]byte(nil), value...)
}

// Value returns the stored value for key.
func (f *FakeKV) Value(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Sets returns how many successful Set calls were made.
func (f *FakeKV) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

// Closed reports whether Close was called.
func (f *FakeKV) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Get implements storage.KV.
func (f *FakeKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, false, f.GetErr
	}
	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements storage.KV.
func (f *FakeKV) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.values[key] = append([]byte(nil), value...)
	f.sets++
	return nil
}

// Close implements storage.KV.
func (f *FakeKV) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}

var _ storage.KV = (*FakeKV)(nil)
