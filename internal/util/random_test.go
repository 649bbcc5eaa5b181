package util

import (
	"bytes"
	"testing"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

func TestRandomBytes(t *testing.T) {
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("len = %d; want 32", len(b))
	}

	b2, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	if bytes.Equal(b, b2) {
		t.Error("two random draws should differ")
	}
}

func TestRandomBytesShortLength(t *testing.T) {
	// Single-byte draws are valid, whatever the value
	b, err := RandomBytes(1)
	if err != nil {
		t.Fatalf("RandomBytes(1) failed: %v", err)
	}
	if len(b) != 1 {
		t.Errorf("len = %d; want 1", len(b))
	}
}

func TestRandomBytesInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := RandomBytes(n); !apperrors.Is(err, apperrors.ErrRandFailure) {
			t.Errorf("RandomBytes(%d) error = %v; want ErrRandFailure", n, err)
		}
	}
}
