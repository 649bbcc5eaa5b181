// fernet-cypher encrypts and decrypts text files with symmetric keys using
// the Fernet authenticated-encryption scheme:
//   - AES-128-CBC with HMAC-SHA256 authentication, per the Fernet spec
//   - Tampered, truncated, or wrong-key messages fail closed
//   - Optional passphrase-protected key files (Argon2id + XChaCha20-Poly1305)
//   - Optional key derivation from arbitrary keyfiles
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)
package main

// version is the application version displayed in the window title.
const version = "v1.0"

func main() {
	run()
}
