package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cat-poster/internal/caption"
	"cat-poster/internal/catapi"
	"cat-poster/internal/history"
	"cat-poster/internal/logger"
	"cat-poster/internal/storage"
	"cat-poster/internal/telegram"
)

// ImageSource finds and downloads a random image.
type ImageSource interface {
	SearchImage(ctx context.Context) (catapi.Image, error)
	Download(ctx context.Context, url string) (catapi.Download, error)
}

// Publisher posts a photo with a caption.
type Publisher interface {
	Username() string
	PublishPhoto(ctx context.Context, photo telegram.Photo, caption string) (telegram.Result, error)
}

// ErrHistoryNotSaved wraps a history write failure that happened after a successful post.
var ErrHistoryNotSaved = errors.New("post published but caption history was not saved")

// Deps are the collaborators of a Runner. Recorder is optional.
type Deps struct {
	Images    ImageSource
	Publisher Publisher
	Generator *caption.Generator
	History   history.Repository
	Recorder  storage.Recorder
	DryRun    bool
	Now       func() time.Time
}

// Outcome describes one run.
type Outcome struct {
	RunID   string
	Image   catapi.Image
	Caption string
	Post    telegram.Result
	DryRun  bool
}

// Runner performs one fetch-caption-post cycle.
type Runner struct {
	deps Deps
}

func New(deps Deps) (*Runner, error) {
	if deps.Images == nil || deps.Publisher == nil || deps.Generator == nil || deps.History == nil {
		return nil, errors.New("publish: images, publisher, generator and history are required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Runner{deps: deps}, nil
}

// Run fetches an image, generates an unused caption and publishes both.
// History is saved only after the post is confirmed.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	start := r.deps.Now()
	out := Outcome{RunID: uuid.NewString(), DryRun: r.deps.DryRun}
	ctx = logger.SetRunID(ctx, out.RunID)
	log := logger.FromContext(ctx)

	log.Infof("Auth OK: @%s", r.deps.Publisher.Username())

	img, err := r.deps.Images.SearchImage(ctx)
	if err != nil {
		return out, err
	}
	out.Image = img
	ctx = logger.WithField(ctx, logger.FieldImageID, img.ID)
	log = logger.FromContext(ctx)
	log.Infof("Image: %s", img.URL)

	dl, err := r.deps.Images.Download(ctx, img.URL)
	if err != nil {
		return out, err
	}
	log.WithField(logger.FieldSize, len(dl.Data)).Debugf("downloaded %s", dl.MIMEType)

	store := r.deps.History.Load()
	log.WithField(logger.FieldCount, store.Len()).Debug("caption history loaded")

	out.Caption = r.deps.Generator.Generate(store)

	if r.deps.DryRun {
		log.Infof("DRY RUN: caption preview %q, nothing posted, history untouched", out.Caption)
		return out, nil
	}

	imageID := img.ID
	if imageID == "" {
		imageID = "n/a"
	}
	res, err := r.deps.Publisher.PublishPhoto(ctx, telegram.Photo{
		Name:    "cat." + dl.Ext(),
		Data:    dl.Data,
		AltText: fmt.Sprintf("Cat photo via TheCatAPI (id: %s)", imageID),
	}, out.Caption)
	if err != nil {
		return out, fmt.Errorf("post failed: %w", err)
	}
	out.Post = res

	log.WithFields(logger.Fields{
		logger.FieldMessageID:  res.MessageID,
		logger.FieldDurationMs: r.deps.Now().Sub(start).Milliseconds(),
	}).Infof("Posted %q %s", out.Caption, res.URL)

	if r.deps.Recorder != nil {
		post := storage.Post{
			Timestamp: r.deps.Now().UTC(),
			RunID:     out.RunID,
			ImageID:   img.ID,
			ImageURL:  img.URL,
			Caption:   out.Caption,
			Profile:   r.deps.Generator.Profile().Name,
			MessageID: res.MessageID,
			PostURL:   res.URL,
		}
		if err := r.deps.Recorder.AppendPost(post); err != nil {
			log.WithError(err).Warn("failed to record post")
		}
	}

	if err := r.deps.History.Save(store); err != nil {
		return out, fmt.Errorf("%w: %v", ErrHistoryNotSaved, err)
	}
	return out, nil
}
