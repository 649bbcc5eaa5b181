// Package crypto wraps the Fernet authenticated-encryption scheme.
//
// Fernet guarantees that a token cannot be read or manipulated without the
// key: decryption of a tampered, truncated, or wrong-key token fails closed
// instead of returning corrupted plaintext. The token format is entirely
// defined by the Fernet specification; this package adds only error typing.
package crypto

import (
	"github.com/fernet/fernet-go"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// Encrypt seals plaintext into a Fernet token using key.
// Both operations here are pure, synchronous, and stateless beyond the key.
func Encrypt(key *fernet.Key, plaintext []byte) ([]byte, error) {
	if key == nil {
		return nil, apperrors.NewCipherError("encrypt", apperrors.ErrKeyLoad)
	}

	token, err := fernet.EncryptAndSign(plaintext, key)
	if err != nil {
		log.Error("encryption failed", log.Err(err))
		return nil, apperrors.NewCipherError("encrypt", err)
	}
	return token, nil
}

// Decrypt verifies and opens a Fernet token. A token produced with a
// different key, or with any byte modified, yields ErrAuthFailed.
// No TTL is enforced: keys and messages are long-lived files.
func Decrypt(key *fernet.Key, token []byte) ([]byte, error) {
	if key == nil {
		return nil, apperrors.NewCipherError("decrypt", apperrors.ErrKeyLoad)
	}

	msg := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{key})
	if msg == nil {
		log.Error("decryption failed", log.Err(apperrors.ErrAuthFailed))
		return nil, apperrors.NewCipherError("decrypt", apperrors.ErrAuthFailed)
	}
	return msg, nil
}
