package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cat-poster/internal/analytics"
	"cat-poster/internal/storage"
)

// NewStatsCmd creates the daily post statistics command.
func NewStatsCmd(a *app) *cobra.Command {
	var (
		date   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise one day of published posts",
		Long: `Read the post log and summarise the posts of one UTC day.

Examples:
  catposter stats
  catposter stats --date 2025-08-01 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
				day = d
			}
			posts, err := storage.ReadPosts(a.cfg.PostLog())
			if err != nil {
				return fmt.Errorf("loading post log: %w", err)
			}
			stats := analytics.AnalyzeDailyPosts(posts, day)
			if asJSON {
				js, err := stats.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), js)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), stats.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to summarise (YYYY-MM-DD, UTC); defaults to today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a text summary")
	return cmd
}
