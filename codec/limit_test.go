package codec

import (
	"strings"
	"testing"
)

func TestLimitRejectsOversizedPayload(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 8}

	small, err := c.Encode("tiny")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v, err := c.Decode(small); err != nil || v != "tiny" {
		t.Fatalf("Decode small: v=%q err=%v", v, err)
	}

	big := []byte(strings.Repeat("x", 9))
	if _, err := c.Decode(big); err == nil {
		t.Fatalf("Decode should reject %d bytes over limit 8", len(big))
	}

	// Encode side is never limited.
	if _, err := c.Encode(strings.Repeat("x", 100)); err != nil {
		t.Fatalf("Encode over limit: %v", err)
	}
}

func TestLimitDisabled(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 0}
	if v, err := c.Decode([]byte(strings.Repeat("y", 1024))); err != nil || len(v) != 1024 {
		t.Fatalf("Decode with limit disabled: len=%d err=%v", len(v), err)
	}
}
