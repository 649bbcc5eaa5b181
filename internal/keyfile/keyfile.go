// Package keyfile manages Fernet key files: generation, loading, passphrase
// protection, and derivation from arbitrary keyfiles.
//
// A plain key file holds the standard base64url Fernet key encoding, so keys
// remain interchangeable with any other Fernet implementation.
package keyfile

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/sha3"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// KeySize is the raw Fernet key length in bytes.
const KeySize = 32

// DefaultName is the key file written when the user does not pick a name.
const DefaultName = "default.key"

// New creates a fresh random key in memory.
func New() (*fernet.Key, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		log.Error("key generation failed", log.Err(err))
		return nil, apperrors.NewKeyError("generate", "", err)
	}
	return &key, nil
}

// Generate creates a fresh random key and writes its base64url encoding to
// path. The failure is recoverable: the caller logs it and carries on.
func Generate(path string) (*fernet.Key, error) {
	log.Debug("generating key", log.String("path", path))

	key, err := New()
	if err != nil {
		return nil, apperrors.NewKeyError("generate", path, err)
	}
	if err := Write(key, path); err != nil {
		return nil, err
	}
	return key, nil
}

// Write stores key at path in the standard base64url Fernet encoding.
func Write(key *fernet.Key, path string) error {
	if err := os.WriteFile(path, []byte(key.Encode()), 0o600); err != nil {
		log.Error("key file write failed", log.String("path", path), log.Err(err))
		return apperrors.NewKeyError("generate", path, err)
	}
	log.Debug("key written", log.String("path", path), log.String("fingerprint", Fingerprint(key)))
	return nil
}

// Load reads a key from path.
//
// Failure is fatal severity: no further operation is meaningful without a
// key. The shell maps it to a nonzero exit instead of the core calling
// os.Exit itself.
func Load(path string) (*fernet.Key, error) {
	log.Debug("loading key", log.String("path", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error("key load failed", log.String("path", path), log.Err(err))
		return nil, apperrors.NewFatalKeyError("load", path, fmt.Errorf("%w: %v", apperrors.ErrKeyLoad, err))
	}

	if bytes.HasPrefix(raw, []byte(protectMagic)) {
		log.Error("key load failed", log.String("path", path), log.Err(apperrors.ErrKeyProtected))
		return nil, apperrors.NewFatalKeyError("load", path, apperrors.ErrKeyProtected)
	}

	key, err := fernet.DecodeKey(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Error("key load failed", log.String("path", path), log.Err(err))
		return nil, apperrors.NewFatalKeyError("load", path, fmt.Errorf("%w: %v", apperrors.ErrInvalidKey, err))
	}

	log.Debug("key loaded", log.String("path", path), log.String("fingerprint", Fingerprint(key)))
	return key, nil
}

// Fingerprint returns a short hex digest of the key, safe for log lines.
func Fingerprint(key *fernet.Key) string {
	if key == nil {
		return ""
	}
	h := sha3.Sum256(key[:])
	return hex.EncodeToString(h[:4])
}
