package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cat-poster/internal/history"
)

// NewHistoryCmd creates the history inspection command.
func NewHistoryCmd(a *app) *cobra.Command {
	var tail int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the used-caption history",
		Long: `Show how many captions are recorded and print the most recent ones.

Examples:
  catposter history
  catposter history --tail 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tail < 0 {
				return fmt.Errorf("tail must not be negative, got %d", tail)
			}
			repo := history.NewFileRepository(a.cfg.HistoryPath(), a.cfg.HistoryLimit)
			store := repo.Load()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d captions\n", repo.Path(), store.Len())
			for _, c := range store.Recent(tail) {
				fmt.Fprintf(w, "  %s\n", c)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&tail, "tail", 10, "Number of recent captions to print")
	return cmd
}
