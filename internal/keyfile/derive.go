package keyfile

import (
	"fmt"
	"io"
	"os"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/sha3"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// FromKeyfiles derives a Fernet key from the contents of arbitrary files.
//
// CRITICAL: The ordered vs unordered distinction changes the derived key:
//   - Ordered:   SHA3-256(file1 || file2 || ...)
//   - Unordered: SHA3-256(file1) XOR SHA3-256(file2) XOR ...
func FromKeyfiles(paths []string, ordered bool) (*fernet.Key, error) {
	if len(paths) == 0 {
		return nil, apperrors.NewFatalKeyError("derive", "", apperrors.ErrNoKeyfiles)
	}

	var digest []byte
	var err error
	if ordered {
		digest, err = deriveOrdered(paths)
	} else {
		digest, err = deriveUnordered(paths)
	}
	if err != nil {
		log.Error("keyfile derivation failed", log.Err(err))
		return nil, err
	}

	// XOR cancellation from duplicate keyfiles would yield the all-zero key,
	// which anyone can reconstruct.
	if !ordered && allZero(digest) {
		log.Error("keyfile derivation failed", log.Err(apperrors.ErrDuplicateKeyfiles))
		return nil, apperrors.NewFatalKeyError("derive", "", apperrors.ErrDuplicateKeyfiles)
	}

	var key fernet.Key
	copy(key[:], digest)

	log.Debug("key derived from keyfiles",
		log.Int("keyfiles", len(paths)),
		log.Bool("ordered", ordered),
		log.String("fingerprint", Fingerprint(&key)))
	return &key, nil
}

// deriveOrdered hashes all keyfiles sequentially; the file order matters.
func deriveOrdered(paths []string) ([]byte, error) {
	hasher := sha3.New256()
	for _, path := range paths {
		if err := hashInto(hasher, path); err != nil {
			return nil, err
		}
	}
	return hasher.Sum(nil), nil
}

// deriveUnordered hashes each keyfile individually and XORs the digests, so
// the file order does not matter. Duplicate keyfiles cancel out in pairs;
// the caller rejects the resulting zero digest.
func deriveUnordered(paths []string) ([]byte, error) {
	var combined []byte
	for _, path := range paths {
		hasher := sha3.New256()
		if err := hashInto(hasher, path); err != nil {
			return nil, err
		}
		digest := hasher.Sum(nil)

		if combined == nil {
			combined = digest
		} else {
			for i, b := range digest {
				combined[i] ^= b
			}
		}
	}
	return combined, nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func hashInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return apperrors.NewFatalKeyError("derive", path, fmt.Errorf("%w: %v", apperrors.ErrKeyLoad, err))
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return apperrors.NewFatalKeyError("derive", path, err)
	}
	return nil
}
