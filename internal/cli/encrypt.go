package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/app"
	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/keyfile"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/message"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a text file",
	Long: `Encrypt a message file with a Fernet key. The ciphertext token is
written next to the input with a _C suffix: note.txt becomes note_C.txt.

Examples:
  # Encrypt with a key file
  fernet-cypher encrypt -k default.key -i note.txt

  # Encrypt with a passphrase-protected key (prompts for the passphrase)
  fernet-cypher encrypt -k secrets.key -i note.txt

  # Encrypt with keyfiles instead of a key file
  fernet-cypher encrypt --keyfile photo.jpg --keyfile song.mp3 -i note.txt

  # Choose the output path explicitly and overwrite without prompting
  fernet-cypher encrypt -k default.key -i note.txt -o note.enc -y`,
	RunE: runEncrypt,
}

// Encrypt flags
var (
	encKey      string
	encKeyfiles []string
	encOrdered  bool
	encInput    string
	encOutput   string
	encQuiet    bool
	encYes      bool
)

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.SilenceErrors = true
	encryptCmd.SilenceUsage = true

	encryptCmd.Flags().StringVarP(&encKey, "key", "k", "", "Key file path")
	encryptCmd.Flags().StringArrayVar(&encKeyfiles, "keyfile", nil, "Derive the key from file contents (can be repeated)")
	encryptCmd.Flags().BoolVar(&encOrdered, "keyfile-ordered", false, "Keyfile order matters (sequential hashing)")
	encryptCmd.Flags().StringVarP(&encInput, "input", "i", "", "Message file to encrypt")
	encryptCmd.Flags().StringVarP(&encOutput, "output", "o", "", "Output path (derived from input if not specified)")
	encryptCmd.Flags().BoolVarP(&encQuiet, "quiet", "q", false, "Suppress status output")
	encryptCmd.Flags().BoolVarP(&encYes, "yes", "y", false, "Overwrite the output file without prompting")

	_ = encryptCmd.MarkFlagRequired("input")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(encKey, encKeyfiles, encOrdered, encInput, encOutput, encYes, encQuiet, message.EncryptSuffix)
	if err != nil {
		NewReporter(encQuiet).Failure(err)
		return err
	}

	_, err = app.Encrypt(req)
	return err
}

// buildRequest validates shared encrypt/decrypt flags and assembles the
// operation request, prompting for passphrase or overwrite as needed.
func buildRequest(key string, keyfiles []string, ordered bool, input, output string, yes, quiet bool, suffix string) (*app.Request, error) {
	if key == "" && len(keyfiles) == 0 {
		return nil, fmt.Errorf("a key file (-k) or keyfile (--keyfile) is required")
	}

	req := &app.Request{
		KeyPath:         key,
		Keyfiles:        keyfiles,
		KeyfilesOrdered: ordered,
		MessagePath:     input,
		OutputPath:      output,
		Overwrite:       yes,
		Reporter:        NewReporter(quiet),
	}

	if key != "" && keyfile.IsProtected(key) {
		passphrase, err := ReadPassphraseInteractive(false)
		if err != nil {
			return nil, err
		}
		req.Passphrase = []byte(passphrase)
	}

	if !yes {
		out := output
		if out == "" {
			out = message.DeriveOutputPath(input, suffix)
		}
		if message.Exists(out) {
			if !confirmOverwrite(out) {
				return nil, apperrors.ErrCancelled
			}
			req.Overwrite = true
		}
	}

	return req, nil
}

func confirmOverwrite(path string) bool {
	fmt.Fprintf(os.Stderr, "Output file %s already exists. Overwrite? [y/N]: ", path)
	response, _ := stdin.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
