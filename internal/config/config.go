package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
)

// HashtagsAuto keeps the profile's sampled hashtag sets.
const HashtagsAuto = "auto"

type Config struct {
	// TheCatAPI
	CatAPIKey  string `env:"CAT_API_KEY"`
	CatAPIHost string `env:"CAT_API_HOST"`

	// Telegram
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	DryRun bool `env:"DRY_RUN" envDefault:"false"`

	// Captions
	CaptionProfile          string `env:"CAPTION_PROFILE" envDefault:"long"`
	CaptionMaxLength        int    `env:"CAPTION_MAX_LENGTH" envDefault:"0"`
	CaptionMaxAttempts      int    `env:"CAPTION_MAX_ATTEMPTS" envDefault:"40"`
	CaptionFallbackAttempts int    `env:"CAPTION_FALLBACK_ATTEMPTS" envDefault:"0"`
	CaptionHashtags         string `env:"CAPTION_HASHTAGS" envDefault:"auto"`

	// Storage
	StateDir     string `env:"STATE_DIR" envDefault:".state"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"5000"`
	PostLogPath  string `env:"POST_LOG_PATH"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogCaller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// New parses the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.CaptionMaxAttempts < 0 {
		return nil, fmt.Errorf("CAPTION_MAX_ATTEMPTS must not be negative, got %d", cfg.CaptionMaxAttempts)
	}
	if cfg.CaptionFallbackAttempts < 0 {
		return nil, fmt.Errorf("CAPTION_FALLBACK_ATTEMPTS must not be negative, got %d", cfg.CaptionFallbackAttempts)
	}
	return cfg, nil
}

// HistoryPath is the used-captions file inside StateDir.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.StateDir, "used_captions.json")
}

// PostLog returns the post log path, defaulting to posts.jsonl inside StateDir.
func (c *Config) PostLog() string {
	if c.PostLogPath != "" {
		return c.PostLogPath
	}
	return filepath.Join(c.StateDir, "posts.jsonl")
}

// FixedHashtags reports whether captions use a fixed hashtag suffix instead of the profile's sets.
func (c *Config) FixedHashtags() (string, bool) {
	if strings.EqualFold(strings.TrimSpace(c.CaptionHashtags), HashtagsAuto) {
		return "", false
	}
	return strings.TrimSpace(c.CaptionHashtags), true
}

// ValidatePost checks the credentials a real post needs. Dry runs still authenticate, so the
// same keys are required.
func (c *Config) ValidatePost() error {
	var missing []string
	if c.CatAPIKey == "" {
		missing = append(missing, "CAT_API_KEY")
	}
	if c.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return errors.New("missing environment variable: " + strings.Join(missing, ", "))
	}
	return nil
}
