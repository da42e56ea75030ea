package tiercache

// Hooks receive the four cache events as plain method calls.
// Implementations MUST be cheap and non-blocking; the cache calls them
// synchronously on hot paths. Wrap with hooks/async when a sink may
// block. Hooks set in Options observe events through the same dispatch
// path as Subscribe callbacks and in the same order.
type Hooks[K comparable, V any] interface {
	// A Get was answered from the cache store.
	Hit(key K, value V)

	// Neither tier held a cached value.
	Miss(key K)

	// A value was written into the cache store (Set or Get side effect).
	Set(key K, value V)

	// A key was removed from both stores, authoritative first.
	Deleted(key K)
}

// NopHooks is the default no-op.
type NopHooks[K comparable, V any] struct{}

func (NopHooks[K, V]) Hit(K, V)  {}
func (NopHooks[K, V]) Miss(K)    {}
func (NopHooks[K, V]) Set(K, V)  {}
func (NopHooks[K, V]) Deleted(K) {}

// bindHooks subscribes h to every event kind on e.
func bindHooks[K comparable, V any](e *emitter[K, V], h Hooks[K, V]) {
	e.subscribe(EventHit, func(ev Event[K, V]) { h.Hit(ev.Key, ev.Value) })
	e.subscribe(EventMiss, func(ev Event[K, V]) { h.Miss(ev.Key) })
	e.subscribe(EventSet, func(ev Event[K, V]) { h.Set(ev.Key, ev.Value) })
	e.subscribe(EventDeleted, func(ev Event[K, V]) { h.Deleted(ev.Key) })
}
