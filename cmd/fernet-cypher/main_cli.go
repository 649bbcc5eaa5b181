//go:build cli

package main

import (
	"fmt"
	"os"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/cli"
)

// run is the CLI-only entry point.
// This build excludes all GUI dependencies (Fyne, OpenGL, etc.) and can run
// on headless systems without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "fernet-cypher %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: fernet-cypher <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  keygen     Generate a new Fernet key file")
		fmt.Fprintln(os.Stderr, "  encrypt    Encrypt a text file")
		fmt.Fprintln(os.Stderr, "  decrypt    Decrypt a text file")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'fernet-cypher <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: This is a CLI-only build without GUI support.")
		fmt.Fprintln(os.Stderr, "For the GUI version, build without the 'cli' tag.")
		os.Exit(0)
	}
}
