package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pboard/internal/cli"
	"pboard/internal/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation",
	Long: `Show documentation for a topic. With no topic, lists the available
topics.

Examples:
  pboard docs
  pboard docs gestures`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDocTopics,
	RunE:              runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "Available topics:")
		for _, topic := range docs.Topics() {
			fmt.Fprintf(out, "  %s\n", topic)
		}
		fmt.Fprintln(out, "\nUse: pboard docs <topic>")
		return nil
	}

	content, ok := docs.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown topic %q (available: %s)",
			args[0], strings.Join(docs.Topics(), ", "))
	}

	// Render markdown for terminals; pipe the raw source otherwise.
	if !cli.IsTerminal(os.Stdout) {
		fmt.Fprint(out, content)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(96),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	rendered, err := r.Render(content)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", args[0], err)
	}
	fmt.Fprint(out, rendered)
	return nil
}

// completeDocTopics returns a completion function for doc topics.
func completeDocTopics(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, topic := range docs.Topics() {
		if strings.HasPrefix(topic, strings.ToLower(toComplete)) {
			completions = append(completions, topic)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
