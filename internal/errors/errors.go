// Package errors provides typed errors for fernet-cypher operations.
// This enables callers to use errors.Is() and errors.As() for specific error handling,
// and to map error severity to exit behavior instead of calling os.Exit in core code.
package errors

import (
	"errors"
	"fmt"
)

// Severity classifies how the caller should react to an error.
//
// Only key loading is fatal: no further operation is meaningful without a key.
// Cipher and file errors are recoverable - the shell (CLI or GUI) decides whether
// to continue.
type Severity int

const (
	SeverityRecoverable Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityRecoverable:
		return "recoverable"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrAuthFailed) to check for specific errors.
var (
	// Key errors
	ErrKeyLoad           = errors.New("key could not be loaded")
	ErrInvalidKey        = errors.New("invalid key encoding")
	ErrKeyProtected      = errors.New("key file is passphrase protected")
	ErrKeyNotProtected   = errors.New("key file is not passphrase protected")
	ErrNoKeyfiles        = errors.New("no keyfiles specified")
	ErrDuplicateKeyfiles = errors.New("duplicate keyfiles cancel out")

	// Cipher errors
	ErrAuthFailed    = errors.New("authentication failed")
	ErrCipherFailure = errors.New("cipher operation failed")
	ErrRandFailure   = errors.New("crypto/rand failure")

	// File errors
	ErrFileNotFound = errors.New("file not found")
	ErrFileExists   = errors.New("file already exists")

	// Operation errors
	ErrCancelled = errors.New("operation cancelled")
)

// KeyError represents an error while generating, loading, or unwrapping a key.
// Loading failures carry SeverityFatal: the original fail-fast policy, with the
// exit decision moved out to the shell.
type KeyError struct {
	Op       string // Operation: "generate", "load", "protect", "unprotect", "derive"
	Path     string // Key file path, if any
	Severity Severity
	Err      error // Underlying error
}

func (e *KeyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("key %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("key %s: %v", e.Op, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// NewKeyError creates a recoverable KeyError.
func NewKeyError(op, path string, err error) *KeyError {
	return &KeyError{Op: op, Path: path, Severity: SeverityRecoverable, Err: err}
}

// NewFatalKeyError creates a fatal KeyError.
func NewFatalKeyError(op, path string, err error) *KeyError {
	return &KeyError{Op: op, Path: path, Severity: SeverityFatal, Err: err}
}

// CipherError represents an error during an encrypt or decrypt transform.
// Always recoverable: the message is unusable but the process can continue.
type CipherError struct {
	Op  string // Operation: "encrypt", "decrypt"
	Err error  // Underlying error
}

func (e *CipherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cipher %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cipher %s failed", e.Op)
}

func (e *CipherError) Unwrap() error {
	return e.Err
}

// NewCipherError creates a new CipherError.
func NewCipherError(op string, err error) *CipherError {
	return &CipherError{Op: op, Err: err}
}

// FileError represents an error during message file I/O. Always recoverable.
type FileError struct {
	Op   string // Operation: "open", "read", "write", "stat"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// SeverityOf reports the severity of err. Errors without an explicit severity
// are recoverable.
func SeverityOf(err error) Severity {
	var ke *KeyError
	if errors.As(err, &ke) {
		return ke.Severity
	}
	return SeverityRecoverable
}

// IsFatal reports whether err should terminate the process.
func IsFatal(err error) bool {
	return err != nil && SeverityOf(err) == SeverityFatal
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsAuthFailed checks if the error indicates authentication failure:
// a tampered token, a truncated token, or the wrong key.
func IsAuthFailed(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}
