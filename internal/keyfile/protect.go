package keyfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/crypto"
	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/util"
)

// Protected key file layout:
//
//	magic (4) || version (1) || salt (16) || nonce (24) || sealed key (32+16)
//
// The key is sealed with XChaCha20-Poly1305 under an Argon2id-derived wrap
// key. The header bytes are bound as additional data, so any edit to them
// also fails authentication.
const (
	protectMagic   = "FCPK"
	protectVersion = byte(1)

	protectSaltSize  = 16
	protectNonceSize = chacha20poly1305.NonceSizeX
	protectHeaderLen = len(protectMagic) + 1 + protectSaltSize
)

// Argon2id parameters for the key-wrap KDF.
// CRITICAL: changing these makes existing protected key files unreadable.
const (
	argon2Passes  = 4
	argon2Memory  = 64 * 1024 // 64 MiB
	argon2Threads = 4
)

// Protect wraps key with a passphrase and writes the protected form to path.
func Protect(key *fernet.Key, passphrase []byte, path string) error {
	log.Debug("protecting key", log.String("path", path))

	salt, err := util.RandomBytes(protectSaltSize)
	if err != nil {
		return apperrors.NewKeyError("protect", path, err)
	}
	nonce, err := util.RandomBytes(protectNonceSize)
	if err != nil {
		return apperrors.NewKeyError("protect", path, err)
	}

	wrapKey := argon2.IDKey(passphrase, salt, argon2Passes, argon2Memory, argon2Threads, chacha20poly1305.KeySize)
	defer crypto.SecureZero(wrapKey)

	aead, err := chacha20poly1305.NewX(wrapKey)
	if err != nil {
		return apperrors.NewKeyError("protect", path, err)
	}

	header := make([]byte, 0, protectHeaderLen)
	header = append(header, protectMagic...)
	header = append(header, protectVersion)
	header = append(header, salt...)

	out := make([]byte, 0, protectHeaderLen+protectNonceSize+KeySize+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, key[:], header)

	if err := os.WriteFile(path, out, 0o600); err != nil {
		log.Error("protected key write failed", log.String("path", path), log.Err(err))
		return apperrors.NewKeyError("protect", path, err)
	}

	log.Debug("protected key written", log.String("path", path), log.String("fingerprint", Fingerprint(key)))
	return nil
}

// LoadProtected reads a passphrase-protected key from path.
// A wrong passphrase is an authentication failure and, like every other key
// loading failure, carries fatal severity.
func LoadProtected(path string, passphrase []byte) (*fernet.Key, error) {
	log.Debug("loading protected key", log.String("path", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error("key load failed", log.String("path", path), log.Err(err))
		return nil, apperrors.NewFatalKeyError("unprotect", path, fmt.Errorf("%w: %v", apperrors.ErrKeyLoad, err))
	}

	if !bytes.HasPrefix(raw, []byte(protectMagic)) {
		return nil, apperrors.NewFatalKeyError("unprotect", path, apperrors.ErrKeyNotProtected)
	}
	if len(raw) < protectHeaderLen+protectNonceSize+KeySize {
		return nil, apperrors.NewFatalKeyError("unprotect", path, apperrors.ErrInvalidKey)
	}
	if raw[len(protectMagic)] != protectVersion {
		return nil, apperrors.NewFatalKeyError("unprotect", path, apperrors.ErrInvalidKey)
	}

	header := raw[:protectHeaderLen]
	salt := header[len(protectMagic)+1:]
	nonce := raw[protectHeaderLen : protectHeaderLen+protectNonceSize]
	sealed := raw[protectHeaderLen+protectNonceSize:]

	wrapKey := argon2.IDKey(passphrase, salt, argon2Passes, argon2Memory, argon2Threads, chacha20poly1305.KeySize)
	defer crypto.SecureZero(wrapKey)

	aead, err := chacha20poly1305.NewX(wrapKey)
	if err != nil {
		return nil, apperrors.NewFatalKeyError("unprotect", path, err)
	}

	keyBytes, err := aead.Open(nil, nonce, sealed, header)
	if err != nil {
		log.Error("key unprotect failed", log.String("path", path), log.Err(apperrors.ErrAuthFailed))
		return nil, apperrors.NewFatalKeyError("unprotect", path, apperrors.ErrAuthFailed)
	}
	defer crypto.SecureZero(keyBytes)

	if len(keyBytes) != KeySize {
		return nil, apperrors.NewFatalKeyError("unprotect", path, apperrors.ErrInvalidKey)
	}

	var key fernet.Key
	copy(key[:], keyBytes)

	log.Debug("protected key loaded", log.String("path", path), log.String("fingerprint", Fingerprint(&key)))
	return &key, nil
}

// IsProtected reports whether the file at path is a passphrase-protected key.
func IsProtected(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, len(protectMagic))
	if _, err := f.Read(magic); err != nil {
		return false
	}
	return bytes.Equal(magic, []byte(protectMagic))
}
