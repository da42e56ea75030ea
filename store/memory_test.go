package store

import (
	"context"
	"testing"
)

func TestMemoryBasicOps(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[string, int]()

	if _, ok, err := s.Get(ctx, "a"); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "a", 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get(ctx, "a"); err != nil || !ok || v != 1 {
		t.Fatalf("Get: v=%d ok=%v err=%v", v, ok, err)
	}
	if ok, err := s.Has(ctx, "a"); err != nil || !ok {
		t.Fatalf("Has: ok=%v err=%v", ok, err)
	}

	// Upsert has no prior-existence constraint.
	if err := s.Set(ctx, "a", 2); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	if v, _, _ := s.Get(ctx, "a"); v != 2 {
		t.Fatalf("upsert not applied, v=%d", v)
	}

	if ok, err := s.Delete(ctx, "a"); err != nil || !ok {
		t.Fatalf("Delete existing: ok=%v err=%v", ok, err)
	}
	if ok, err := s.Delete(ctx, "a"); err != nil || ok {
		t.Fatalf("Delete absent: ok=%v err=%v", ok, err)
	}
}

func TestMemoryClearAndLen(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[string, string]()
	_ = s.Set(ctx, "a", "1")
	_ = s.Set(ctx, "b", "2")
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d", s.Len())
	}
	if ok, _ := s.Has(ctx, "a"); ok {
		t.Fatalf("Has true after Clear")
	}
}
