package cli

import (
	"github.com/spf13/cobra"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/app"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/keyfile"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new Fernet key file",
	Long: `Generate a fresh random Fernet key and write it to a key file.

By default the key is written in the standard base64url Fernet encoding and
is interchangeable with any other Fernet implementation.

Examples:
  # Generate default.key in the current directory
  fernet-cypher keygen

  # Generate a named key
  fernet-cypher keygen -o secrets.key

  # Generate a passphrase-protected key (prompts with confirmation)
  fernet-cypher keygen -o secrets.key --protect

  # Derive a key from existing files instead of random generation
  fernet-cypher keygen -o derived.key --from-keyfile photo.jpg --from-keyfile song.mp3`,
	RunE: runKeygen,
}

// Keygen flags
var (
	genOutput       string
	genProtect      bool
	genFromKeyfiles []string
	genOrdered      bool
	genQuiet        bool
)

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.SilenceErrors = true
	keygenCmd.SilenceUsage = true

	keygenCmd.Flags().StringVarP(&genOutput, "output", "o", keyfile.DefaultName, "Key file path")
	keygenCmd.Flags().BoolVar(&genProtect, "protect", false, "Protect the key file with a passphrase")
	keygenCmd.Flags().StringArrayVar(&genFromKeyfiles, "from-keyfile", nil, "Derive the key from file contents (can be repeated)")
	keygenCmd.Flags().BoolVar(&genOrdered, "keyfile-ordered", false, "Keyfile order matters (sequential hashing)")
	keygenCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "Suppress status output")
}

func runKeygen(cmd *cobra.Command, args []string) error {
	reporter := NewReporter(genQuiet)

	var passphrase string
	if genProtect {
		var err error
		passphrase, err = ReadPassphraseInteractive(true)
		if err != nil {
			reporter.Failure(err)
			return err
		}
		WarnWeakPassphrase(passphrase)
	}

	if len(genFromKeyfiles) > 0 {
		// Derived keys are written like generated ones so both paths share
		// the same on-disk formats.
		key, err := keyfile.FromKeyfiles(genFromKeyfiles, genOrdered)
		if err != nil {
			reporter.Failure(err)
			return err
		}
		if passphrase != "" {
			err = keyfile.Protect(key, []byte(passphrase), genOutput)
		} else {
			err = keyfile.Write(key, genOutput)
		}
		if err != nil {
			reporter.Failure(err)
			return err
		}
		reporter.Success("Key written to " + genOutput)
		return nil
	}

	_, err := app.GenerateKey(genOutput, []byte(passphrase), reporter)
	return err
}
