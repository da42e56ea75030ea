package tiercache

import "sync"

// EventKind names one of the four cache lifecycle events.
type EventKind uint8

const (
	// EventHit fires when a Get was satisfied from the cache store.
	EventHit EventKind = iota + 1
	// EventMiss fires when no tier yielded a cached value.
	EventMiss
	// EventSet fires whenever a value lands in the cache store, whether
	// via Set or as a side effect of Get.
	EventSet
	// EventDeleted fires after a key removed from the authoritative
	// store was also removed from the cache store.
	EventDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "cache:hit"
	case EventMiss:
		return "cache:miss"
	case EventSet:
		return "cache:set"
	case EventDeleted:
		return "cache:deleted"
	default:
		return "cache:unknown"
	}
}

// Event is delivered to subscribers. Value is the zero V for EventMiss
// and EventDeleted, which carry only a key.
type Event[K comparable, V any] struct {
	Kind  EventKind
	Key   K
	Value V
}

type subscriber[K comparable, V any] struct {
	id uint64
	fn func(Event[K, V])
}

// emitter fans events out to subscribers synchronously, in emit order,
// on the emitting goroutine. No buffering or replay: a subscription
// registered after an event fired never observes it.
type emitter[K comparable, V any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[EventKind][]subscriber[K, V]
}

func newEmitter[K comparable, V any]() *emitter[K, V] {
	return &emitter[K, V]{subs: make(map[EventKind][]subscriber[K, V])}
}

func (e *emitter[K, V]) subscribe(kind EventKind, fn func(Event[K, V])) func() {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subs[kind] = append(e.subs[kind], subscriber[K, V]{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		list := e.subs[kind]
		for i, s := range list {
			if s.id == id {
				e.subs[kind] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		e.mu.Unlock()
	}
}

func (e *emitter[K, V]) emit(ev Event[K, V]) {
	e.mu.RLock()
	list := e.subs[ev.Kind]
	e.mu.RUnlock()
	for _, s := range list {
		s.fn(ev)
	}
}
