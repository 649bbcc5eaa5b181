// Package cli provides the command-line interface for fernet-cypher.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// Version is set by main.go
var Version = "dev"

var (
	logFile string
	verbose bool
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "fernet-cypher",
	Short: "Symmetric text file encryption with Fernet",
	Long: `fernet-cypher generates symmetric keys and encrypts/decrypts text
files with the Fernet authenticated-encryption scheme:
  - AES-128-CBC with HMAC-SHA256 authentication (defined by the Fernet spec)
  - Tampered, truncated, or wrong-key messages fail closed
  - Optional passphrase-protected key files (Argon2id + XChaCha20-Poly1305)
  - Optional key derivation from arbitrary keyfiles

Encrypting name.ext writes name_C.ext next to it; decrypting writes name_D.ext.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.LevelDebug
		if logFile != "" {
			if err := log.EnableFileLogging(logFile, level); err != nil {
				return err
			}
		}
		if verbose {
			stderr := log.NewWriterLogger(os.Stderr, level)
			if logFile != "" {
				log.SetLogger(log.NewTeeLogger(log.GetLogger(), stderr))
			} else {
				log.SetLogger(stderr)
			}
		}
		return nil
	},
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if the GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if len(os.Args) < 2 {
		return false
	}

	switch os.Args[1] {
	case "keygen", "encrypt", "decrypt", "help", "--help", "-h", "version", "--version", "-v":
	default:
		return false
	}

	if err := rootCmd.Execute(); err != nil {
		if apperrors.IsFatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	return true
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "run.log", "Append-only log file (empty to disable)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Also log to stderr")
}
