package message

import (
	"path/filepath"
	"strings"
)

// Output name suffixes, injected before the extension.
const (
	EncryptSuffix = "_C"
	DecryptSuffix = "_D"
)

// DeriveOutputPath derives the output path for a transformed message by
// injecting suffix before the input's extension, keeping the directory:
//
//	DeriveOutputPath("note.txt", EncryptSuffix) == "note_C.txt"
//	DeriveOutputPath("note_C.txt", DecryptSuffix) == "note_C_D.txt"
//
// Already-suffixed names are not special-cased, and no collision handling is
// attempted.
func DeriveOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
