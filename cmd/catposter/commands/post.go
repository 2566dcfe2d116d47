package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cat-poster/internal/catapi"
	"cat-poster/internal/history"
	"cat-poster/internal/logger"
	"cat-poster/internal/publish"
	"cat-poster/internal/storage"
	"cat-poster/internal/telegram"
)

// NewPostCmd creates the post command.
func NewPostCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Fetch a cat image and publish it with a fresh caption",
		Long: `Fetch one random image, generate an unused caption and publish it.

The caption history is saved only after the post succeeds.

Examples:
  catposter post
  catposter post --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if dryRun {
				cfg.DryRun = true
			}
			if err := cfg.ValidatePost(); err != nil {
				return err
			}
			ctx := logger.SetComponent(cmd.Context(), "post")

			gen, err := newGenerator(cfg, "")
			if err != nil {
				return err
			}
			pub, err := telegram.New(cfg.TelegramBotToken, cfg.TelegramChatID)
			if err != nil {
				return err
			}

			var rec storage.Recorder
			if !cfg.DryRun {
				fr, err := storage.NewFileRecorder(cfg.PostLog())
				if err != nil {
					logger.CtxWarn(ctx, "post log disabled: %v", err)
				} else {
					rec = fr
				}
			}

			runner, err := publish.New(publish.Deps{
				Images:    catapi.New(catapi.Config{APIKey: cfg.CatAPIKey, Host: cfg.CatAPIHost}),
				Publisher: pub,
				Generator: gen,
				History:   history.NewFileRepository(cfg.HistoryPath(), cfg.HistoryLimit),
				Recorder:  rec,
				DryRun:    cfg.DryRun,
			})
			if err != nil {
				return err
			}

			out, err := runner.Run(ctx)
			return reportRun(ctx, cmd.OutOrStdout(), out, err)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Authenticate, fetch and caption, but do not post (same as DRY_RUN=true)")
	return cmd
}

// reportRun prints the outcome of a run. A post whose history could not be
// saved is still reported before the error is returned.
func reportRun(ctx context.Context, w io.Writer, out publish.Outcome, err error) error {
	if err != nil && !errors.Is(err, publish.ErrHistoryNotSaved) {
		return err
	}

	fmt.Fprintf(w, "Caption: %s\n", out.Caption)
	if out.DryRun {
		fmt.Fprintln(w, "DRY RUN: nothing posted")
		return nil
	}
	fmt.Fprintf(w, "Message ID: %d\n", out.Post.MessageID)
	if out.Post.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", out.Post.URL)
	}
	fmt.Fprintf(w, "Posted: %s\n", out.Image.URL)

	if err != nil {
		logger.CtxError(ctx, "caption may repeat on the next run: %v", err)
		return err
	}
	return nil
}
