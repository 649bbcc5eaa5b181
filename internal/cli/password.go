package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Picocrypt/zxcvbn-go"
	"golang.org/x/term"
)

var (
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrPassphraseEmpty    = errors.New("passphrase cannot be empty")
)

// stdinReader defers to the current os.Stdin on every read.
type stdinReader struct{}

func (stdinReader) Read(p []byte) (int, error) { return os.Stdin.Read(p) }

// stdin is shared by every prompt. A fresh bufio.Reader per prompt would
// swallow the rest of a piped input on its first fill, so a passphrase and
// its confirmation must come from the same buffer.
var stdin = bufio.NewReader(stdinReader{})

// isTerminal returns true if stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readPassphraseSecure reads a passphrase from stdin without echo.
// Falls back to a buffered read if stdin is not a terminal.
func readPassphraseSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		p, err := stdin.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		p = strings.TrimSuffix(p, "\n")
		p = strings.TrimSuffix(p, "\r")
		return p, nil
	}

	p, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(p), nil
}

// ReadPassphraseInteractive prompts for a passphrase.
// If confirm is true, asks for confirmation (for key generation).
func ReadPassphraseInteractive(confirm bool) (string, error) {
	passphrase, err := readPassphraseSecure("Passphrase: ")
	if err != nil {
		return "", err
	}

	if passphrase == "" {
		return "", ErrPassphraseEmpty
	}

	if confirm {
		again, err := readPassphraseSecure("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if passphrase != again {
			return "", ErrPassphraseMismatch
		}
	}

	return passphrase, nil
}

// WarnWeakPassphrase prints a warning when the passphrase scores below
// "good" on the zxcvbn 0-4 scale.
func WarnWeakPassphrase(passphrase string) {
	if zxcvbn.PasswordStrength(passphrase, nil).Score < 3 {
		fmt.Fprintln(os.Stderr, "Warning: weak passphrase; consider a longer one")
	}
}
