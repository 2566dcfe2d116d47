package config

import (
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.CaptionProfile != "long" || cfg.CaptionMaxAttempts != 40 || cfg.HistoryLimit != 5000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HistoryPath() != filepath.Join(".state", "used_captions.json") {
		t.Fatalf("history path: %s", cfg.HistoryPath())
	}
	if cfg.PostLog() != filepath.Join(".state", "posts.jsonl") {
		t.Fatalf("post log: %s", cfg.PostLog())
	}
	if _, fixed := cfg.FixedHashtags(); fixed {
		t.Fatalf("hashtags should default to auto")
	}
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("CAPTION_PROFILE", "short")
	t.Setenv("CAPTION_MAX_ATTEMPTS", "5")
	t.Setenv("CAPTION_HASHTAGS", "")
	t.Setenv("STATE_DIR", "/tmp/cats")
	t.Setenv("DRY_RUN", "true")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.CaptionProfile != "short" || cfg.CaptionMaxAttempts != 5 || !cfg.DryRun || !cfg.LogCaller {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if tags, fixed := cfg.FixedHashtags(); !fixed || tags != "" {
		t.Fatalf("empty CAPTION_HASHTAGS should disable hashtags, got %q %v", tags, fixed)
	}
	if cfg.HistoryPath() != "/tmp/cats/used_captions.json" {
		t.Fatalf("history path: %s", cfg.HistoryPath())
	}
}

func TestNew_RejectsNegativeAttempts(t *testing.T) {
	t.Setenv("CAPTION_MAX_ATTEMPTS", "-1")
	if _, err := New(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidatePost(t *testing.T) {
	cfg := &Config{}
	err := cfg.ValidatePost()
	if err == nil {
		t.Fatalf("expected missing credentials")
	}
	want := "missing environment variable: CAT_API_KEY, TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
	cfg = &Config{CatAPIKey: "k", TelegramBotToken: "t", TelegramChatID: "@cats"}
	if err := cfg.ValidatePost(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}
