package tiercache

import (
	"context"
	"testing"

	st "github.com/unkn0wn-root/tiercache/store"
)

func TestEventKindNames(t *testing.T) {
	cases := map[EventKind]string{
		EventHit:     "cache:hit",
		EventMiss:    "cache:miss",
		EventSet:     "cache:set",
		EventDeleted: "cache:deleted",
		EventKind(0): "cache:unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("EventKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

// TestEmitOrderWithinCall: a read-through miss emits cache:miss before
// cache:set, and all subscribers of a kind run in registration order,
// synchronously on the calling goroutine.
func TestEmitOrderWithinCall(t *testing.T) {
	ctx := context.Background()
	auth := st.NewMemory[string, string]()
	_ = auth.Set(ctx, "a", "1")

	c, err := NewReadThrough(Options[string, string]{Store: auth})
	if err != nil {
		t.Fatalf("NewReadThrough: %v", err)
	}

	var order []string
	c.Subscribe(EventMiss, func(Event[string, string]) { order = append(order, "miss-1") })
	c.Subscribe(EventMiss, func(Event[string, string]) { order = append(order, "miss-2") })
	c.Subscribe(EventSet, func(Event[string, string]) { order = append(order, "set") })

	if _, _, err := c.Get(ctx, "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := []string{"miss-1", "miss-2", "set"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
