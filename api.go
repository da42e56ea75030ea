package tiercache

import (
	"context"

	st "github.com/unkn0wn-root/tiercache/store"
)

// Cache is the two-tier cache API shared by both policies. K is the
// caller's key type, V the value type. The authoritative store and the
// cache store are supplied by the caller via Options; the component
// never manages their lifecycle.
type Cache[K comparable, V any] interface {
	// Get resolves key according to the component's read policy.
	// Returns (value, true, nil) when a value was found on either tier;
	// (zero, false, nil) when both tiers report absence.
	Get(ctx context.Context, key K) (v V, ok bool, err error)

	// Set upserts key on the authoritative store first, then mirrors it
	// into the cache store. Both writes complete before Set returns.
	Set(ctx context.Context, key K, value V) error

	// Delete removes key from the authoritative store. Only when that
	// removal reports success is the cache entry removed too. The
	// returned bool is the authoritative store's result.
	Delete(ctx context.Context, key K) (bool, error)

	// Has reports existence on either tier, cache checked first.
	Has(ctx context.Context, key K) (bool, error)

	// Clear empties both stores unconditionally.
	Clear(ctx context.Context) error

	// Subscribe registers fn for one event kind. Delivery is synchronous
	// and in emit order within a single operation; fn must not block.
	// The returned func cancels the subscription.
	Subscribe(kind EventKind, fn func(Event[K, V])) (cancel func())

	// Close releases resources owned by the component. Caller-supplied
	// stores are never closed; a default cache store created by the
	// constructor is.
	Close(ctx context.Context) error
}

// Options configure a ReadThrough or Fallback cache.
// Only Store is required; others have sensible defaults.
type Options[K comparable, V any] struct {
	// Required: the authoritative store, treated as the source of truth.
	Store st.Store[K, V]

	// Cache is the fast tier. If nil, a fresh in-memory store is used.
	Cache st.Store[K, V]

	Logger Logger      // if nil, NopLogger is used
	Hooks  Hooks[K, V] // optional; observes the same four events as subscribers
}

// NewReadThrough builds a cache-preferred component: Get consults the
// cache first and lazily populates it from the authoritative store on
// miss.
func NewReadThrough[K comparable, V any](opts Options[K, V]) (Cache[K, V], error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &readThrough[K, V]{base: b}, nil
}

// NewFallback builds a store-preferred component: Get always consults
// the authoritative store first and uses the cache only when the
// authoritative read comes back absent. Authoritative hits refresh the
// cache opportunistically.
func NewFallback[K comparable, V any](opts Options[K, V]) (Cache[K, V], error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &fallback[K, V]{base: b}, nil
}
