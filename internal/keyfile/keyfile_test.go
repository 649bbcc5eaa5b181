package keyfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fernet/fernet-go"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

func TestGenerateAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.key")

	key, err := Generate(path)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(key[:], loaded[:]) {
		t.Error("loaded key differs from generated key")
	}

	// On-disk form is the standard base64url Fernet encoding
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading key file: %v", err)
	}
	decoded, err := fernet.DecodeKey(string(raw))
	if err != nil {
		t.Fatalf("key file is not a valid Fernet key encoding: %v", err)
	}
	if !bytes.Equal(decoded[:], key[:]) {
		t.Error("decoded key file differs from generated key")
	}
}

func TestGenerateKeysDiffer(t *testing.T) {
	dir := t.TempDir()

	k1, err := Generate(filepath.Join(dir, "a.key"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	k2, err := Generate(filepath.Join(dir, "b.key"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if bytes.Equal(k1[:], k2[:]) {
		t.Error("two generated keys should differ")
	}
}

func TestGenerateUnwritablePath(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "missing", "dir", "test.key"))
	if err == nil {
		t.Fatal("Generate into a missing directory should fail")
	}
	if apperrors.IsFatal(err) {
		t.Error("generation failure should be recoverable")
	}
}

func TestLoadMissingKeyIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.key"))
	if err == nil {
		t.Fatal("Load of a missing key should fail")
	}
	if !apperrors.IsFatal(err) {
		t.Error("key load failure should be fatal severity")
	}
	if !apperrors.Is(err, apperrors.ErrKeyLoad) {
		t.Errorf("error = %v; want ErrKeyLoad in chain", err)
	}

	var ke *apperrors.KeyError
	if !apperrors.As(err, &ke) {
		t.Fatalf("error = %T; want *KeyError", err)
	}
	if ke.Op != "load" {
		t.Errorf("Op = %q; want %q", ke.Op, "load")
	}
}

func TestLoadInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.key")
	if err := os.WriteFile(path, []byte("not a key at all!!"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of garbage should fail")
	}
	if !apperrors.Is(err, apperrors.ErrInvalidKey) {
		t.Errorf("error = %v; want ErrInvalidKey in chain", err)
	}
	if !apperrors.IsFatal(err) {
		t.Error("invalid key should be fatal severity")
	}
}

func TestProtectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protected.key")
	passphrase := []byte("correct horse battery staple")

	key, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := Protect(key, passphrase, path); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}
	if !IsProtected(path) {
		t.Error("IsProtected should report a protected key file")
	}

	loaded, err := LoadProtected(path, passphrase)
	if err != nil {
		t.Fatalf("LoadProtected failed: %v", err)
	}
	if !bytes.Equal(key[:], loaded[:]) {
		t.Error("unprotected key differs from original")
	}
}

func TestProtectWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protected.key")

	key, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := Protect(key, []byte("right"), path); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	_, err = LoadProtected(path, []byte("wrong"))
	if err == nil {
		t.Fatal("LoadProtected with wrong passphrase should fail")
	}
	if !apperrors.IsAuthFailed(err) {
		t.Errorf("error = %v; want ErrAuthFailed in chain", err)
	}
}

func TestLoadRefusesProtectedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protected.key")

	key, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := Protect(key, []byte("pass"), path); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	_, err = Load(path)
	if !apperrors.Is(err, apperrors.ErrKeyProtected) {
		t.Errorf("Load of a protected key = %v; want ErrKeyProtected", err)
	}
}

func TestLoadProtectedTamperedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protected.key")
	passphrase := []byte("pass")

	key, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := Protect(key, passphrase, path); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[len(raw)-1] ^= 0x01
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProtected(path, passphrase); err == nil {
		t.Error("LoadProtected of a tampered file should fail")
	}
}

func TestIsProtectedPlainKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.key")
	if _, err := Generate(path); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if IsProtected(path) {
		t.Error("plain key file should not report as protected")
	}
	if IsProtected(filepath.Join(t.TempDir(), "missing.key")) {
		t.Error("missing file should not report as protected")
	}
}

func TestFromKeyfiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "one.bin")
	f2 := filepath.Join(dir, "two.bin")
	if err := os.WriteFile(f1, []byte("first keyfile contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f2, []byte("second keyfile contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Deterministic
	k1, err := FromKeyfiles([]string{f1, f2}, true)
	if err != nil {
		t.Fatalf("FromKeyfiles failed: %v", err)
	}
	k2, err := FromKeyfiles([]string{f1, f2}, true)
	if err != nil {
		t.Fatalf("FromKeyfiles failed: %v", err)
	}
	if !bytes.Equal(k1[:], k2[:]) {
		t.Error("ordered derivation should be deterministic")
	}

	// Ordered derivation is order-sensitive
	k3, err := FromKeyfiles([]string{f2, f1}, true)
	if err != nil {
		t.Fatalf("FromKeyfiles failed: %v", err)
	}
	if bytes.Equal(k1[:], k3[:]) {
		t.Error("ordered derivation should depend on file order")
	}

	// Unordered derivation is order-insensitive
	u1, err := FromKeyfiles([]string{f1, f2}, false)
	if err != nil {
		t.Fatalf("FromKeyfiles failed: %v", err)
	}
	u2, err := FromKeyfiles([]string{f2, f1}, false)
	if err != nil {
		t.Fatalf("FromKeyfiles failed: %v", err)
	}
	if !bytes.Equal(u1[:], u2[:]) {
		t.Error("unordered derivation should not depend on file order")
	}

	// Ordered and unordered schemes must not collide
	if bytes.Equal(k1[:], u1[:]) {
		t.Error("ordered and unordered derivation should differ")
	}
}

func TestFromKeyfilesDuplicates(t *testing.T) {
	f := filepath.Join(t.TempDir(), "one.bin")
	if err := os.WriteFile(f, []byte("keyfile contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Unordered XOR derivation cancels duplicates into the all-zero key
	_, err := FromKeyfiles([]string{f, f}, false)
	if !apperrors.Is(err, apperrors.ErrDuplicateKeyfiles) {
		t.Errorf("error = %v; want ErrDuplicateKeyfiles", err)
	}
	if !apperrors.IsFatal(err) {
		t.Error("duplicate keyfile rejection should be fatal severity")
	}

	// Sequential hashing keeps duplicates meaningful
	if _, err := FromKeyfiles([]string{f, f}, true); err != nil {
		t.Errorf("ordered derivation with duplicates failed: %v", err)
	}
}

func TestFromKeyfilesEmpty(t *testing.T) {
	_, err := FromKeyfiles(nil, false)
	if !apperrors.Is(err, apperrors.ErrNoKeyfiles) {
		t.Errorf("error = %v; want ErrNoKeyfiles", err)
	}
}

func TestFromKeyfilesMissingFile(t *testing.T) {
	_, err := FromKeyfiles([]string{filepath.Join(t.TempDir(), "gone.bin")}, false)
	if err == nil {
		t.Fatal("FromKeyfiles with a missing file should fail")
	}
	if !apperrors.IsFatal(err) {
		t.Error("keyfile derivation failure should be fatal severity")
	}
}

func TestFingerprint(t *testing.T) {
	key, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	fp := Fingerprint(key)
	if len(fp) != 8 {
		t.Errorf("fingerprint length = %d; want 8 hex chars", len(fp))
	}
	if Fingerprint(key) != fp {
		t.Error("fingerprint should be deterministic")
	}
	if Fingerprint(nil) != "" {
		t.Error("fingerprint of nil key should be empty")
	}
}
