package commands

import (
	"fmt"

	"cat-poster/internal/caption"
	"cat-poster/internal/config"
	"cat-poster/internal/logger"
)

// newGenerator builds a caption generator from cfg. A non-empty profile overrides CAPTION_PROFILE.
func newGenerator(cfg *config.Config, profile string) (*caption.Generator, error) {
	if profile == "" {
		profile = cfg.CaptionProfile
	}
	p, err := caption.LookupProfile(profile)
	if err != nil {
		return nil, err
	}
	opts := []caption.Option{
		caption.WithMaxLength(cfg.CaptionMaxLength),
		caption.WithMaxAttempts(cfg.CaptionMaxAttempts),
		caption.WithFallbackAttempts(cfg.CaptionFallbackAttempts),
		caption.WithLogger(logger.GetDefault().WithField(logger.FieldProfile, p.Name)),
	}
	if tags, fixed := cfg.FixedHashtags(); fixed {
		opts = append(opts, caption.WithHashtags(tags))
	}
	return caption.NewGenerator(p, opts...)
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
