// Package tiercache reconciles a fast cache store with an authoritative
// backing store under one of two read policies.
//
// Components:
//   - store.Store[K, V]: minimal key-value capability (get/set/delete/
//     has/clear). Any implementation may serve as either tier.
//   - ReadThrough: cache-preferred reads; misses populate the cache
//     lazily from the authoritative store.
//   - Fallback: store-preferred reads; the cache answers only when the
//     authoritative store is absent, and authoritative hits refresh it.
//
// Both policies share set/delete/has/clear semantics: Set writes to
// both tiers, Delete mirrors into the cache only on authoritative
// success, Has short-circuits on the cache, Clear empties both.
//
// Events:
//
//	cache:hit(key, value)  - Get answered from the cache store
//	cache:miss(key)        - no tier held a cached value
//	cache:set(key, value)  - a value landed in the cache store
//	cache:deleted(key)     - key removed from both stores
//
// Subscribers (Subscribe or Options.Hooks) are called synchronously in
// emit order; there is no buffering or replay.
//
// Usage:
//
//	cache, err := tiercache.NewReadThrough(tiercache.Options[string, User]{
//	    Store: userStore, // authoritative
//	})
//	cancel := cache.Subscribe(tiercache.EventMiss, func(ev tiercache.Event[string, User]) {
//	    metrics.Inc("user_cache_miss")
//	})
//	defer cancel()
//
//	u, ok, err := cache.Get(ctx, "u:42")
//
// The caller owns both stores. Failures from either store propagate to
// the caller unchanged; absence is never an error.
package tiercache
