// Package util provides small shared helpers for fernet-cypher.
package util

import (
	"crypto/rand"
	"fmt"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid length %d", apperrors.ErrRandFailure, n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRandFailure, err)
	}
	return b, nil
}
