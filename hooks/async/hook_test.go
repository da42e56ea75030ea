package asynchook

import (
	"sync"
	"testing"
)

type countingHooks struct {
	mu   sync.Mutex
	hits int
	dels int
}

func (h *countingHooks) Hit(string, string) {
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}
func (h *countingHooks) Miss(string)        {}
func (h *countingHooks) Set(string, string) {}
func (h *countingHooks) Deleted(string) {
	h.mu.Lock()
	h.dels++
	h.mu.Unlock()
}

// TestCloseDrainsQueue: events enqueued before Close are all delivered.
func TestCloseDrainsQueue(t *testing.T) {
	inner := &countingHooks{}
	h := New[string, string](inner, 2, 100)

	for i := 0; i < 50; i++ {
		h.Hit("k", "v")
	}
	h.Deleted("k")
	h.Close()

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.hits != 50 || inner.dels != 1 {
		t.Fatalf("delivered hits=%d dels=%d, want 50/1", inner.hits, inner.dels)
	}
}

// TestFullQueueDrops: with no workers draining fast enough and a tiny
// queue, overflow is dropped rather than blocking the caller.
func TestFullQueueDrops(t *testing.T) {
	block := make(chan struct{})
	inner := &countingHooks{}
	h := New[string, string](&blockingHooks{inner: inner, gate: block}, 1, 1)

	// First event occupies the worker; the rest fight over one slot.
	for i := 0; i < 20; i++ {
		h.Hit("k", "v")
	}
	close(block)
	h.Close()

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.hits >= 20 {
		t.Fatalf("expected drops, delivered %d of 20", inner.hits)
	}
	if inner.hits == 0 {
		t.Fatalf("no events delivered at all")
	}
}

type blockingHooks struct {
	inner *countingHooks
	gate  chan struct{}
}

func (h *blockingHooks) Hit(k, v string) {
	<-h.gate
	h.inner.Hit(k, v)
}
func (h *blockingHooks) Miss(k string)   { h.inner.Miss(k) }
func (h *blockingHooks) Set(k, v string) { h.inner.Set(k, v) }
func (h *blockingHooks) Deleted(k string) {
	h.inner.Deleted(k)
}

func TestCloseIdempotent(t *testing.T) {
	h := New[string, string](&countingHooks{}, 1, 10)
	h.Close()
	h.Close()
}
