// Package asynchook decouples event sinks from the cache hot path.
//
// tiercache delivers events synchronously on the calling goroutine, so
// a slow sink slows every Get. Wrap it here to move delivery onto a
// small worker pool behind a bounded queue. When the queue is full
// events are dropped, never blocked on.
//
//	raw := sloghooks.New[string, User](slog.Default(), sloghooks.Options{HitEvery: 100})
//	hooks := asynchook.New[string, User](raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := tiercache.NewReadThrough(tiercache.Options[string, User]{
//	    Store: userStore,
//	    Hooks: hooks,
//	})
//
// Note that dropping makes these hooks unsuitable for anything that
// must observe every event; use a direct Subscribe callback for that.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/tiercache"
)

type Hooks[K comparable, V any] struct {
	inner tiercache.Hooks[K, V]
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ tiercache.Hooks[string, any] = (*Hooks[string, any])(nil)

func New[K comparable, V any](inner tiercache.Hooks[K, V], workers, qlen int) *Hooks[K, V] {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks[K, V]{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Safe to call multiple
// times.
func (h *Hooks[K, V]) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks[K, V]) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks[K, V]) Hit(key K, value V) { h.try(func() { h.inner.Hit(key, value) }) }
func (h *Hooks[K, V]) Miss(key K)         { h.try(func() { h.inner.Miss(key) }) }
func (h *Hooks[K, V]) Set(key K, value V) { h.try(func() { h.inner.Set(key, value) }) }
func (h *Hooks[K, V]) Deleted(key K)      { h.try(func() { h.inner.Deleted(key) }) }
