package store

import (
	"context"
	"sync"
)

// Memory is an in-process map store. It is the default cache tier when
// Options.Cache is nil and doubles as an authoritative store in tests
// and single-process setups. Safe for concurrent use.
type Memory[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

var _ Store[string, string] = (*Memory[string, string])(nil)

func NewMemory[K comparable, V any]() *Memory[K, V] {
	return &Memory[K, V]{m: make(map[K]V)}
}

func (s *Memory[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok, nil
}

func (s *Memory[K, V]) Set(_ context.Context, key K, value V) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Memory[K, V]) Delete(_ context.Context, key K) (bool, error) {
	s.mu.Lock()
	_, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	s.mu.Unlock()
	return ok, nil
}

func (s *Memory[K, V]) Has(_ context.Context, key K) (bool, error) {
	s.mu.RLock()
	_, ok := s.m[key]
	s.mu.RUnlock()
	return ok, nil
}

func (s *Memory[K, V]) Clear(_ context.Context) error {
	s.mu.Lock()
	s.m = make(map[K]V)
	s.mu.Unlock()
	return nil
}

// Len reports the number of entries. Monitoring helper, not part of
// the Store contract.
func (s *Memory[K, V]) Len() int {
	s.mu.RLock()
	n := len(s.m)
	s.mu.RUnlock()
	return n
}
