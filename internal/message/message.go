// Package message handles whole-file message I/O and output filename
// derivation. Messages are read in full immediately before an operation,
// transformed, written to a derived output path, and discarded.
package message

import (
	"fmt"
	"os"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// Load reads the entire file at path as text.
// Failure is recoverable: the caller logs it and the process continues.
func Load(path string) (string, error) {
	log.Debug("loading message", log.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("message load failed", log.String("path", path), log.Err(err))
		if os.IsNotExist(err) {
			return "", apperrors.NewFileError("read", path, fmt.Errorf("%w: %v", apperrors.ErrFileNotFound, err))
		}
		return "", apperrors.NewFileError("read", path, err)
	}

	log.Debug("message loaded", log.String("path", path), log.Int("bytes", len(data)))
	return string(data), nil
}

// Write writes text to path, overwriting any existing content.
func Write(text, path string) error {
	log.Debug("writing message", log.String("path", path), log.Int("bytes", len(text)))

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		log.Error("message write failed", log.String("path", path), log.Err(err))
		return apperrors.NewFileError("write", path, err)
	}
	return nil
}

// Exists reports whether a file already exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
