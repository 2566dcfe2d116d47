package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cat-poster/internal/history"
	"cat-poster/internal/logger"
)

// NewCaptionCmd creates the caption preview command.
func NewCaptionCmd(a *app) *cobra.Command {
	var (
		count   int
		profile string
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "caption",
		Short: "Print fresh captions without posting",
		Long: `Generate captions against the saved history without posting anything.

Generated captions are unique among themselves and against the history file.
With --save they are also written to the history.

Examples:
  catposter caption
  catposter caption -n 5 --profile short
  catposter caption --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePositiveInt(count, "count"); err != nil {
				return err
			}
			gen, err := newGenerator(a.cfg, profile)
			if err != nil {
				return err
			}
			repo := history.NewFileRepository(a.cfg.HistoryPath(), a.cfg.HistoryLimit)
			store := repo.Load()
			logger.CtxDebug(cmd.Context(), "loaded %d used captions from %s", store.Len(), repo.Path())
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), gen.Generate(store))
			}
			if !save {
				return nil
			}
			if err := repo.Save(store); err != nil {
				return fmt.Errorf("saving history: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of captions to print")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Caption profile (long, short, classic); defaults to CAPTION_PROFILE")
	cmd.Flags().BoolVar(&save, "save", false, "Record the printed captions in the history file")
	return cmd
}
