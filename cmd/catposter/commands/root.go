package commands

import (
	"context"

	"github.com/spf13/cobra"

	"cat-poster/internal/config"
	"cat-poster/internal/logger"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	cfg *config.Config
}

// NewRootCmd builds the command tree. Running the root command alone performs a post.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:   "catposter",
		Short: "Post a random cat picture with a never-repeated caption",
		Long: `catposter fetches a random image from TheCatAPI, writes a caption that has
not been used before, and publishes both to a Telegram chat or channel.

Configuration comes from the environment (or a .env file):
  CAT_API_KEY, CAT_API_HOST, TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID, DRY_RUN,
  CAPTION_PROFILE, CAPTION_MAX_LENGTH, CAPTION_MAX_ATTEMPTS,
  CAPTION_FALLBACK_ATTEMPTS, CAPTION_HASHTAGS, STATE_DIR, HISTORY_LIMIT,
  POST_LOG_PATH, LOG_LEVEL, LOG_FORMAT, LOG_CALLER`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			logger.SetDefaultLogger(logger.New(&logger.Config{
				Level:        cfg.LogLevel,
				Format:       cfg.LogFormat,
				Output:       cmd.ErrOrStderr(),
				ServiceName:  "catposter",
				ReportCaller: cfg.LogCaller,
			}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	post := NewPostCmd(a)
	root.RunE = post.RunE
	root.Flags().AddFlagSet(post.Flags())

	root.AddCommand(post)
	root.AddCommand(NewCaptionCmd(a))
	root.AddCommand(NewHistoryCmd(a))
	root.AddCommand(NewStatsCmd(a))
	root.AddCommand(NewVersionCmd())

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
