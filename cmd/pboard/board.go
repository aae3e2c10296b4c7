package main

import (
	"github.com/spf13/cobra"

	"pboard/internal/config"
	"pboard/internal/script"
	"pboard/internal/store"
	"pboard/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the project board",
	Long: `Open the interactive project board.

This is also what running pboard with no subcommand does.

Examples:
  pboard board
  pboard board --seed sprint.yaml`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

// seedFile optionally preloads the board from an op script.
var seedFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML op script to preload the board")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	applyColorMode(cfg.Color)

	// The one store for this process; every component below shares it.
	s := store.New(cfg.Prefix)

	if seedFile != "" {
		sc, err := script.Load(seedFile)
		if err != nil {
			return err
		}
		sc.Apply(s)
	}

	return tui.Run(s, cfg)
}
