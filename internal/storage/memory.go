package storage

import (
	"context"
	"sync"
)

// Memory is an in-process KV. Contents are lost on exit.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

// Get implements KV.
func (s *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements KV.
func (s *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
	return nil
}

// Close implements KV.
func (s *Memory) Close() error { return nil }
