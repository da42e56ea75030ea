// Package redis adapts a Redis client to the tiercache store
// capability. Values are serialized through a pluggable Codec and keys
// are namespaced so Clear only touches entries owned by this store.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/tiercache/codec"
	st "github.com/unkn0wn-root/tiercache/store"
)

var (
	ErrNilClient = errors.New("redis store: nil client")
	ErrNoCodec   = errors.New("redis store: codec is required")
	ErrNoNS      = errors.New("redis store: namespace is required")
)

type Store[V any] struct {
	rdb         goredis.UniversalClient
	ns          string
	codec       codec.Codec[V]
	ttl         time.Duration
	closeClient bool
}

var _ st.Store[string, any] = (*Store[any])(nil)

type Config[V any] struct {
	Client goredis.UniversalClient

	// Namespace prefixes every key and scopes Clear. Required.
	Namespace string

	Codec codec.Codec[V]

	// TTL applied on every Set; <= 0 means no expiry.
	TTL time.Duration

	// CloseClient releases the client on Close. Set true only if this
	// store exclusively owns the client.
	CloseClient bool
}

func New[V any](cfg Config[V]) (*Store[V], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Codec == nil {
		return nil, ErrNoCodec
	}
	if cfg.Namespace == "" {
		return nil, ErrNoNS
	}
	return &Store[V]{
		rdb:         cfg.Client,
		ns:          cfg.Namespace,
		codec:       cfg.Codec,
		ttl:         cfg.TTL,
		closeClient: cfg.CloseClient,
	}, nil
}

func (s *Store[V]) key(k string) string { return s.ns + ":" + k }

func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err == goredis.Nil {
		return zero, false, nil // miss
	}
	if err != nil {
		return zero, false, err // transport/server error
	}
	v, err := s.codec.Decode(b)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (s *Store[V]) Set(ctx context.Context, key string, value V) error {
	b, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0 // non-positive TTLs mean "no expiry"
	}
	return s.rdb.Set(ctx, s.key(key), b, ttl).Err()
}

func (s *Store[V]) Delete(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Del(ctx, s.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store[V]) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes every key under this store's namespace using SCAN and
// batched DELs. Entries written concurrently during the scan may
// survive; per-call completion is all the store contract promises.
func (s *Store[V]) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, s.ns+":*", 256).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close releases the underlying redis client only when this store owns
// it. Safe to call multiple times; repeated calls become no-ops.
func (s *Store[V]) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
