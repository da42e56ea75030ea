// Package bigcache adapts allegro/bigcache to the tiercache store
// capability. Expiry is bigcache's global LifeWindow; there is no
// per-entry TTL.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/tiercache/codec"
	st "github.com/unkn0wn-root/tiercache/store"
)

type Store[V any] struct {
	c     *bc.BigCache
	codec codec.Codec[V]
}

var _ st.Store[string, any] = (*Store[any])(nil)

type Config[V any] struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited

	Codec codec.Codec[V]
}

func New[V any](cfg Config[V]) (*Store[V], error) {
	if cfg.Codec == nil {
		return nil, errors.New("bigcache store: codec is required")
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c, codec: cfg.Codec}, nil
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	b, err := s.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
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
	return s.c.Set(key, b)
}

func (s *Store[V]) Delete(_ context.Context, key string) (bool, error) {
	err := s.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store[V]) Has(_ context.Context, key string) (bool, error) {
	_, err := s.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store[V]) Clear(_ context.Context) error {
	return s.c.Reset()
}

func (s *Store[V]) Close(_ context.Context) error {
	return s.c.Close()
}
