package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pboard/internal/cli"
	"pboard/internal/config"
	"pboard/internal/model"
	"pboard/internal/script"
	"pboard/internal/store"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Apply an op script to a fresh board and print the result",
	Long: `Apply a YAML op script to a fresh in-memory board and print the
resulting record set as a table. Nothing is saved.

Examples:
  pboard replay sprint.yaml
  pboard replay sprint.yaml --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var replayQuiet bool

func init() {
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "suppress the op summary line")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	applyColorMode(cfg.Color)

	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}

	s := store.New(cfg.Prefix)

	// Count broadcasts to show how many ops actually changed the board
	// (redundant moves and unknown IDs are silent no-ops).
	broadcasts := 0
	s.AddListener(func(recs []model.Record) { broadcasts++ })

	sc.Apply(s)

	out := cmd.OutOrStdout()
	printBoard(out, s.Snapshot())
	if !replayQuiet {
		fmt.Fprintf(out, "\n%d ops applied, %d changed the board\n", len(sc.Ops), broadcasts)
	}
	return nil
}

// printBoard renders the record set as an aligned table, in creation order.
func printBoard(w io.Writer, recs []model.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "board is empty")
		return
	}

	tbl := cli.NewTable()
	tbl.AddRow(cli.Gray("ID"), cli.Gray("STATUS"), cli.Gray("EFFORT"), cli.Gray("TITLE"))
	for _, r := range recs {
		status := cli.Yellow(string(r.Status))
		if r.Status == model.StatusFinished {
			status = cli.Green(string(r.Status))
		}
		tbl.AddRow(
			r.ID,
			status,
			fmt.Sprintf("%dmd", r.Effort),
			cli.Truncate(r.Title, cli.DefaultMaxTitleWidth),
		)
	}
	tbl.Render(w)
}
