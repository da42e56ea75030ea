package tiercache

import "context"

// readThrough is the cache-preferred policy: reads hit the cache store
// first and lazily populate it from the authoritative store on miss.
// Best when the cache is a faithful subset of the authoritative store
// and read latency matters more than freshness.
type readThrough[K comparable, V any] struct {
	base[K, V]
}

// Get consults the cache first. The existence check and the value read
// are two separate store calls; a concurrent external eviction between
// them can surface a hit that resolves to a zero value. Accepted, not
// guarded against.
func (c *readThrough[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V

	cached, err := c.cache.Has(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if cached {
		v, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			return zero, false, err
		}
		c.ev.emit(Event[K, V]{Kind: EventHit, Key: key, Value: v})
		c.log.Debug("cache hit", Fields{"key": key})
		return v, ok, nil
	}

	c.ev.emit(Event[K, V]{Kind: EventMiss, Key: key})
	c.log.Debug("cache miss; reading authoritative store", Fields{"key": key})

	v, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if err := c.seed(ctx, key, v); err != nil {
		return zero, false, err
	}
	return v, true, nil
}
