package app

import (
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/crypto"
	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/keyfile"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/message"
)

// Request describes one encrypt or decrypt operation.
// Exactly one key source is used: keyfile paths if present, otherwise the
// key file at KeyPath (with Passphrase when the file is protected).
type Request struct {
	KeyPath         string
	Passphrase      []byte
	Keyfiles        []string
	KeyfilesOrdered bool

	MessagePath string
	OutputPath  string // Derived from MessagePath when empty
	Overwrite   bool   // Refuse to clobber an existing output unless set

	Reporter StatusReporter
}

func (req *Request) reporter() StatusReporter {
	if req.Reporter == nil {
		return NullReporter{}
	}
	return req.Reporter
}

// resolveKey loads the key for a request. Every failure path here carries
// fatal severity, preserving the fail-fast policy around missing keys.
func resolveKey(req *Request) (*fernet.Key, error) {
	if len(req.Keyfiles) > 0 {
		return keyfile.FromKeyfiles(req.Keyfiles, req.KeyfilesOrdered)
	}
	if keyfile.IsProtected(req.KeyPath) {
		return keyfile.LoadProtected(req.KeyPath, req.Passphrase)
	}
	return keyfile.Load(req.KeyPath)
}

// Encrypt runs one load key -> load message -> encrypt -> write sequence and
// returns the output path. The operation runs to completion before the next
// event is processed; there is no shared state between operations.
func Encrypt(req *Request) (string, error) {
	r := req.reporter()
	r.Status("Encrypting message...")

	out, err := transform(req, message.EncryptSuffix, func(key *fernet.Key, text string) (string, error) {
		token, err := crypto.Encrypt(key, []byte(text))
		if err != nil {
			return "", err
		}
		return string(token), nil
	})
	if err != nil {
		r.Failure(err)
		return "", err
	}

	log.Info("message encrypted", log.String("input", req.MessagePath), log.String("output", out))
	r.Success(fmt.Sprintf("Encrypted message written to %s", out))
	return out, nil
}

// Decrypt is the inverse of Encrypt. A tampered or wrong-key message fails
// closed with an authentication error and no output file is written.
func Decrypt(req *Request) (string, error) {
	r := req.reporter()
	r.Status("Decrypting message...")

	out, err := transform(req, message.DecryptSuffix, func(key *fernet.Key, text string) (string, error) {
		plaintext, err := crypto.Decrypt(key, []byte(text))
		if err != nil {
			return "", err
		}
		return string(plaintext), nil
	})
	if err != nil {
		r.Failure(err)
		return "", err
	}

	log.Info("message decrypted", log.String("input", req.MessagePath), log.String("output", out))
	r.Success(fmt.Sprintf("Decrypted message written to %s", out))
	return out, nil
}

func transform(req *Request, suffix string, apply func(*fernet.Key, string) (string, error)) (string, error) {
	key, err := resolveKey(req)
	if err != nil {
		return "", err
	}
	defer crypto.SecureZero(key[:])

	text, err := message.Load(req.MessagePath)
	if err != nil {
		return "", err
	}

	out := req.OutputPath
	if out == "" {
		out = message.DeriveOutputPath(req.MessagePath, suffix)
	}
	if !req.Overwrite && message.Exists(out) {
		return "", apperrors.NewFileError("write", out, apperrors.ErrFileExists)
	}

	result, err := apply(key, text)
	if err != nil {
		return "", err
	}

	if err := message.Write(result, out); err != nil {
		return "", err
	}
	return out, nil
}

// GenerateKey creates a new key file at path (DefaultName when empty).
// A non-nil passphrase writes a passphrase-protected key file instead of the
// standard Fernet encoding.
func GenerateKey(path string, passphrase []byte, reporter StatusReporter) (string, error) {
	if reporter == nil {
		reporter = NullReporter{}
	}
	if path == "" {
		path = keyfile.DefaultName
	}
	reporter.Status("Generating key...")

	if len(passphrase) > 0 {
		key, err := keyfile.New()
		if err != nil {
			reporter.Failure(err)
			return "", err
		}
		defer crypto.SecureZero(key[:])

		if err := keyfile.Protect(key, passphrase, path); err != nil {
			reporter.Failure(err)
			return "", err
		}
	} else if _, err := keyfile.Generate(path); err != nil {
		reporter.Failure(err)
		return "", err
	}

	log.Info("key generated", log.String("path", path), log.Bool("protected", len(passphrase) > 0))
	reporter.Success(fmt.Sprintf("Key written to %s", path))
	return path, nil
}
