// Package main is the entry point for the pboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pboard/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pboard",
	Short: "pboard - a terminal project board",
	Long: `pboard is a single-screen project board for your terminal. Projects
are split into an active and a finished column; grab an item and drop
it on the other column to move it.

Board state lives in memory for the session. Seed a session from a
YAML op script with --seed, or replay a script non-interactively with
the replay command.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running pboard with no subcommand opens the board.
	RunE: runBoard,
}

func init() {
	// Disable the default completion command; an explicit one is provided.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("pboard version {{.Version}}\n")
}

// applyColorMode maps the config color setting onto the output helpers.
// "auto" keeps terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		cli.SetColorEnabled(true)
	case "never":
		cli.SetColorEnabled(false)
	}
}
