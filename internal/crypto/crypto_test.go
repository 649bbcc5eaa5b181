package crypto

import (
	"bytes"
	"testing"

	"github.com/fernet/fernet-go"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

func newKey(t *testing.T) *fernet.Key {
	t.Helper()
	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("key generation failed: %v", err)
	}
	return &key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := newKey(t)

	plaintexts := []string{
		"",
		"hello",
		"a longer message\nwith multiple lines\nand a trailing newline\n",
		"unicode: ñandú 日本語 🔑",
	}

	for _, p := range plaintexts {
		token, err := Encrypt(key, []byte(p))
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", p, err)
		}

		got, err := Decrypt(key, token)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if !bytes.Equal(got, []byte(p)) {
			t.Errorf("round trip = %q; want %q", got, p)
		}
	}
}

func TestDecryptWrongKey(t *testing.T) {
	key := newKey(t)
	other := newKey(t)

	token, err := Encrypt(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(other, token)
	if err == nil {
		t.Fatal("Decrypt with wrong key should fail")
	}
	if !apperrors.IsAuthFailed(err) {
		t.Errorf("error = %v; want ErrAuthFailed", err)
	}

	var ce *apperrors.CipherError
	if !apperrors.As(err, &ce) {
		t.Errorf("error = %T; want *CipherError", err)
	}
}

func TestDecryptTamperedToken(t *testing.T) {
	key := newKey(t)

	token, err := Encrypt(key, []byte("tamper detection test message"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip one byte at a time across the token
	for i := 0; i < len(token); i += 7 {
		tampered := make([]byte, len(token))
		copy(tampered, token)
		tampered[i] ^= 0x01

		if _, err := Decrypt(key, tampered); err == nil {
			t.Errorf("Decrypt of token with byte %d flipped should fail", i)
		}
	}
}

func TestDecryptTruncatedToken(t *testing.T) {
	key := newKey(t)

	token, err := Encrypt(key, []byte("truncation test"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	for _, n := range []int{0, 1, len(token) / 2, len(token) - 1} {
		if _, err := Decrypt(key, token[:n]); err == nil {
			t.Errorf("Decrypt of token truncated to %d bytes should fail", n)
		}
	}
}

func TestEncryptNilKey(t *testing.T) {
	if _, err := Encrypt(nil, []byte("x")); err == nil {
		t.Error("Encrypt with nil key should fail")
	}
	if _, err := Decrypt(nil, []byte("x")); err == nil {
		t.Error("Decrypt with nil key should fail")
	}
}

func TestSecureZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	SecureZero(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d = %d; want 0", i, v)
		}
	}

	// Must not panic on empty input
	SecureZero(nil)
	SecureZeroMultiple([]byte{9}, nil, []byte{8, 7})
}
