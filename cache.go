package tiercache

import (
	"context"
	"fmt"

	st "github.com/unkn0wn-root/tiercache/store"
)

// base carries the two store references and the behavior shared by both
// policies: Set, Delete, Has, Clear, and event dispatch. Only the Get
// path differs between readThrough and fallback.
//
// No locking is performed around the two-store sequences. Concurrent
// in-flight calls on the same key can interleave (two misses both
// reading the authoritative store and both seeding the cache); the
// surrounding application owns that discipline.
type base[K comparable, V any] struct {
	store st.Store[K, V] // authoritative
	cache st.Store[K, V] // fast tier
	log   Logger
	ev    *emitter[K, V]

	ownsCache bool // cache was created by the constructor, not the caller
}

func newBase[K comparable, V any](opts Options[K, V]) (base[K, V], error) {
	if opts.Store == nil {
		return base[K, V]{}, fmt.Errorf("tiercache: store is required")
	}

	b := base[K, V]{
		store: opts.Store,
		cache: opts.Cache,
		ev:    newEmitter[K, V](),
	}
	b.log = coalesce[Logger](opts.Logger, NopLogger{})

	if b.cache == nil {
		b.cache = st.NewMemory[K, V]()
		b.ownsCache = true
		b.log.Debug("no cache store given; using in-memory default", nil)
	}
	if opts.Hooks != nil {
		bindHooks(b.ev, opts.Hooks)
	}
	return b, nil
}

// Set writes authoritative-first. If the authoritative write fails the
// cache is left untouched and no event fires, keeping the cache a
// subset of the authoritative store.
func (b *base[K, V]) Set(ctx context.Context, key K, value V) error {
	if err := b.store.Set(ctx, key, value); err != nil {
		return err
	}
	if err := b.cache.Set(ctx, key, value); err != nil {
		return err
	}
	b.ev.emit(Event[K, V]{Kind: EventSet, Key: key, Value: value})
	return nil
}

// Delete treats authoritative success as the single source of truth:
// the cache is only mutated, and EventDeleted only emitted, when the
// authoritative store reports the key existed.
func (b *base[K, V]) Delete(ctx context.Context, key K) (bool, error) {
	existed, err := b.store.Delete(ctx, key)
	if err != nil || !existed {
		return false, err
	}
	if _, err := b.cache.Delete(ctx, key); err != nil {
		return true, err
	}
	b.ev.emit(Event[K, V]{Kind: EventDeleted, Key: key})
	return true, nil
}

// Has short-circuits on a cache hit without querying the authoritative
// store.
func (b *base[K, V]) Has(ctx context.Context, key K) (bool, error) {
	ok, err := b.cache.Has(ctx, key)
	if err != nil || ok {
		return ok, err
	}
	return b.store.Has(ctx, key)
}

// Clear empties both stores unconditionally; an error on one tier does
// not stop the other from being cleared. No event fires.
func (b *base[K, V]) Clear(ctx context.Context) error {
	serr := b.store.Clear(ctx)
	cerr := b.cache.Clear(ctx)
	switch {
	case serr != nil && cerr != nil:
		return &ClearError{StoreErr: serr, CacheErr: cerr}
	case serr != nil:
		return serr
	default:
		return cerr
	}
}

func (b *base[K, V]) Subscribe(kind EventKind, fn func(Event[K, V])) (cancel func()) {
	return b.ev.subscribe(kind, fn)
}

func (b *base[K, V]) Close(ctx context.Context) error {
	if !b.ownsCache {
		return nil
	}
	if c, ok := b.cache.(st.Closer); ok {
		return c.Close(ctx)
	}
	return nil
}

// seed writes an authoritative value into the cache and emits EventSet.
// Shared by both Get paths.
func (b *base[K, V]) seed(ctx context.Context, key K, value V) error {
	if err := b.cache.Set(ctx, key, value); err != nil {
		return err
	}
	b.ev.emit(Event[K, V]{Kind: EventSet, Key: key, Value: value})
	return nil
}
