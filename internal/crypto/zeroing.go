package crypto

import "crypto/subtle"

// SecureZero overwrites a byte slice with zeros so key material does not
// persist in memory longer than needed. Go's garbage collector can still
// have copied the data elsewhere; this only narrows the window.
//
// subtle.ConstantTimeCopy keeps the compiler from optimizing the store away.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros several byte slices in one call.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}
