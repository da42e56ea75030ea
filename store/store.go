// Package store defines the key-value store abstraction used by tiercache.
//
// Any implementation of Store may serve as either the authoritative
// store or the cache tier. Implementations are opaque to the cache
// components: no ordering, atomicity, or durability is assumed beyond
// per-call completion, and the components never assume a store is
// internally synchronized against concurrent external mutation.
//
// Absence of a value is not an error. Get reports it as ok=false and
// Delete on an unknown key returns (false, nil). Errors are reserved
// for store-level failures (IO, transport, corruption) and propagate
// to the cache caller unchanged.
package store

import "context"

// Store is a minimal asynchronous key-value store.
type Store[K comparable, V any] interface {
	// Get returns (value, true, nil) on hit; (zero, false, nil) on miss.
	Get(ctx context.Context, key K) (V, bool, error)

	// Set upserts; prior existence of key carries no constraint.
	Set(ctx context.Context, key K, value V) error

	// Delete removes key and reports whether an entry existed.
	Delete(ctx context.Context, key K) (bool, error)

	// Has reports existence without materializing the value.
	Has(ctx context.Context, key K) (bool, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Closer is optionally implemented by stores holding releasable
// resources (clients, background goroutines).
type Closer interface {
	Close(ctx context.Context) error
}
