package tiercache

import "context"

// fallback is the store-preferred policy: reads always go to the
// authoritative store first and the cache answers only when the
// authoritative read is absent. Best when freshness wins over latency
// and the cache holds stale-but-usable values for degraded periods.
type fallback[K comparable, V any] struct {
	base[K, V]
}

// Get reads the authoritative store unconditionally, even when the
// cache could answer faster; the authoritative tier is treated as
// always fresh. An authoritative hit refreshes the cache before
// returning.
func (c *fallback[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V

	v, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if ok {
		if err := c.seed(ctx, key, v); err != nil {
			return zero, false, err
		}
		return v, true, nil
	}

	cv, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if ok {
		c.ev.emit(Event[K, V]{Kind: EventHit, Key: key, Value: cv})
		c.log.Debug("authoritative store absent; served from cache", Fields{"key": key})
		return cv, true, nil
	}

	c.ev.emit(Event[K, V]{Kind: EventMiss, Key: key})
	return zero, false, nil
}
