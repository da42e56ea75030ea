// Package ristretto adapts dgraph-io/ristretto to the tiercache store
// capability. Suited to the cache tier: ristretto may refuse or evict
// entries under pressure, which the read policies tolerate by design.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/tiercache/codec"
	st "github.com/unkn0wn-root/tiercache/store"
)

type Store[V any] struct {
	c          *rc.Cache
	codec      codec.Codec[V]
	ttl        time.Duration
	syncWrites bool
}

var _ st.Store[string, any] = (*Store[any])(nil)

type Config[V any] struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool

	Codec codec.Codec[V]

	// TTL applied on every Set; <= 0 means no expiry.
	TTL time.Duration

	// SyncWrites waits for ristretto's buffered writes after each Set so
	// a Set is visible to an immediate Get. Costs throughput; leave off
	// when the authoritative store backs every read anyway.
	SyncWrites bool
}

func New[V any](cfg Config[V]) (*Store[V], error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto store: invalid config")
	}
	if cfg.Codec == nil {
		return nil, errors.New("ristretto store: codec is required")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c, codec: cfg.Codec, ttl: cfg.TTL, syncWrites: cfg.SyncWrites}, nil
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok := s.c.Get(key)
	if !ok {
		return zero, false, nil
	}
	b, _ := raw.([]byte)
	if b == nil {
		// drop unexpected entry shape
		s.c.Del(key)
		return zero, false, nil
	}
	v, err := s.codec.Decode(b)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (s *Store[V]) Set(_ context.Context, key string, value V) error {
	b, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	s.c.SetWithTTL(key, b, int64(len(b)), s.ttl)
	if s.syncWrites {
		s.c.Wait()
	}
	return nil
}

// Delete reports prior existence via a Get before the Del; ristretto's
// Del has no result. The two calls can race a concurrent eviction.
func (s *Store[V]) Delete(_ context.Context, key string) (bool, error) {
	_, existed := s.c.Get(key)
	s.c.Del(key)
	return existed, nil
}

func (s *Store[V]) Has(_ context.Context, key string) (bool, error) {
	_, ok := s.c.Get(key)
	return ok, nil
}

func (s *Store[V]) Clear(_ context.Context) error {
	s.c.Clear()
	return nil
}

func (s *Store[V]) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto metrics to the application (not part of
// the store capability).
func (s *Store[V]) Metrics() *rc.Metrics { return s.c.Metrics }
