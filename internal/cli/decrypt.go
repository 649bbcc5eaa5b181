package cli

import (
	"github.com/spf13/cobra"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/app"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/message"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a text file",
	Long: `Decrypt a Fernet-encrypted message file. The plaintext is written
next to the input with a _D suffix: note_C.txt becomes note_C_D.txt.

Decryption fails closed if the message was tampered with, truncated, or
encrypted with a different key.

Examples:
  # Decrypt with a key file
  fernet-cypher decrypt -k default.key -i note_C.txt

  # Decrypt with keyfiles
  fernet-cypher decrypt --keyfile photo.jpg --keyfile song.mp3 -i note_C.txt`,
	RunE: runDecrypt,
}

// Decrypt flags
var (
	decKey      string
	decKeyfiles []string
	decOrdered  bool
	decInput    string
	decOutput   string
	decQuiet    bool
	decYes      bool
)

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.SilenceErrors = true
	decryptCmd.SilenceUsage = true

	decryptCmd.Flags().StringVarP(&decKey, "key", "k", "", "Key file path")
	decryptCmd.Flags().StringArrayVar(&decKeyfiles, "keyfile", nil, "Derive the key from file contents (can be repeated)")
	decryptCmd.Flags().BoolVar(&decOrdered, "keyfile-ordered", false, "Keyfile order matters (sequential hashing)")
	decryptCmd.Flags().StringVarP(&decInput, "input", "i", "", "Message file to decrypt")
	decryptCmd.Flags().StringVarP(&decOutput, "output", "o", "", "Output path (derived from input if not specified)")
	decryptCmd.Flags().BoolVarP(&decQuiet, "quiet", "q", false, "Suppress status output")
	decryptCmd.Flags().BoolVarP(&decYes, "yes", "y", false, "Overwrite the output file without prompting")

	_ = decryptCmd.MarkFlagRequired("input")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(decKey, decKeyfiles, decOrdered, decInput, decOutput, decYes, decQuiet, message.DecryptSuffix)
	if err != nil {
		NewReporter(decQuiet).Failure(err)
		return err
	}

	_, err = app.Decrypt(req)
	return err
}
