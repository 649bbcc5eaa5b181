package message

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

func TestLoadAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	content := "a message\nwith two lines\n"

	if err := Write(content, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != content {
		t.Errorf("Load = %q; want %q", got, content)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")

	if err := Write("old content", path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := Write("new", path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "new" {
		t.Errorf("Load = %q; want %q", got, "new")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Load of a missing file should fail")
	}
	if !apperrors.Is(err, apperrors.ErrFileNotFound) {
		t.Errorf("error = %v; want ErrFileNotFound in chain", err)
	}
	if apperrors.IsFatal(err) {
		t.Error("message load failure should be recoverable, not fatal")
	}

	var fe *apperrors.FileError
	if !apperrors.As(err, &fe) {
		t.Errorf("error = %T; want *FileError", err)
	}
}

func TestWriteUnwritablePath(t *testing.T) {
	err := Write("x", filepath.Join(t.TempDir(), "missing", "dir", "note.txt"))
	if err == nil {
		t.Fatal("Write into a missing directory should fail")
	}
	if apperrors.IsFatal(err) {
		t.Error("message write failure should be recoverable")
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if Exists(path) {
		t.Error("Exists should be false for a missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists should be true for a present file")
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"note.txt", EncryptSuffix, "note_C.txt"},
		{"note.txt", DecryptSuffix, "note_D.txt"},
		// Already-suffixed names are not special-cased
		{"note_C.txt", DecryptSuffix, "note_C_D.txt"},
		{"note_C_D.txt", EncryptSuffix, "note_C_D_C.txt"},
		// Directory is preserved
		{filepath.Join("some", "dir", "note.txt"), EncryptSuffix, filepath.Join("some", "dir", "note_C.txt")},
		// No extension
		{"README", EncryptSuffix, "README_C"},
		// Multiple dots: only the last extension moves
		{"archive.tar.gz", DecryptSuffix, "archive.tar_D.gz"},
	}

	for _, tt := range tests {
		if got := DeriveOutputPath(tt.input, tt.suffix); got != tt.want {
			t.Errorf("DeriveOutputPath(%q, %q) = %q; want %q", tt.input, tt.suffix, got, tt.want)
		}
	}
}
