package catapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"cat-poster/internal/logger"
)

const (
	// DefaultHost is TheCatAPI. TheDogAPI and other forks share the same search endpoint.
	DefaultHost = "https://api.thecatapi.com/v1"

	defaultAttempts  = 3
	defaultRetryWait = 300 * time.Millisecond
	defaultTimeout   = 30 * time.Second
)

// ErrNoImage is returned when the search yields nothing usable.
var ErrNoImage = errors.New("no image URL from TheCatAPI")

// Image is one search result.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Download is a fetched image.
type Download struct {
	Data     []byte
	MIMEType string
}

// Ext returns the file extension matching the MIME type.
func (d Download) Ext() string {
	switch d.MIMEType {
	case MIMEPng:
		return "png"
	case MIMEGif:
		return "gif"
	case MIMEWebp:
		return "webp"
	default:
		return "jpg"
	}
}

// Config holds configuration for the image API client.
type Config struct {
	APIKey    string
	Host      string
	Attempts  int           // search attempts, default 3
	RetryWait time.Duration // linear backoff unit, default 300ms
	Timeout   time.Duration
}

// Client talks to TheCatAPI.
type Client struct {
	api *resty.Client
	cdn *resty.Client
}

// New creates a client. An empty host uses DefaultHost.
func New(cfg Config) *Client {
	host := strings.TrimRight(cfg.Host, "/")
	if host == "" {
		host = DefaultHost
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = defaultRetryWait
	}

	api := resty.New()
	api.SetBaseURL(host)
	api.SetHeader("x-api-key", cfg.APIKey)
	api.SetHeader("Accept", "application/json")
	api.SetTimeout(timeout)
	api.SetRetryCount(attempts - 1)
	api.SetRetryWaitTime(wait)
	api.SetRetryMaxWaitTime(wait * time.Duration(attempts))
	api.SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
		n := 1
		if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
			n = resp.Request.Attempt
		}
		return wait * time.Duration(n), nil
	})
	api.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if err != nil || resp == nil {
			return true
		}
		if resp.IsError() {
			return true
		}
		_, ok := firstImage(resp)
		return !ok
	})
	api.AddRetryHook(func(resp *resty.Response, err error) {
		ctx := context.Background()
		attempt := 0
		if resp != nil && resp.Request != nil {
			ctx = resp.Request.Context()
			attempt = resp.Request.Attempt
		}
		log := logger.FromContext(ctx).WithField(logger.FieldAttempt, attempt)
		if err != nil {
			log = log.WithError(err)
		} else if resp != nil {
			log = log.WithField("status", resp.StatusCode())
		}
		log.Warn("image search failed, retrying")
	})

	cdn := resty.New()
	cdn.SetTimeout(timeout)

	return &Client{api: api, cdn: cdn}
}

// SearchImage returns one random image. Failed or empty searches are retried
// with linear backoff, attempt n waiting n times the retry wait.
func (c *Client) SearchImage(ctx context.Context) (Image, error) {
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		SetResult(&[]Image{}).
		Get("/images/search")
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Image{}, ctxErr
	}
	if err != nil {
		return Image{}, fmt.Errorf("search image: failed to call TheCatAPI: %w", err)
	}
	if resp.IsError() {
		return Image{}, fmt.Errorf("search image: TheCatAPI returned HTTP %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	img, ok := firstImage(resp)
	if !ok {
		return Image{}, ErrNoImage
	}
	return img, nil
}

// firstImage returns the first search result when it carries a URL.
func firstImage(resp *resty.Response) (Image, bool) {
	images, ok := resp.Result().(*[]Image)
	if !ok || images == nil || len(*images) == 0 || (*images)[0].URL == "" {
		return Image{}, false
	}
	return (*images)[0], true
}

// Download fetches the image bytes and detects their MIME type.
func (c *Client) Download(ctx context.Context, url string) (Download, error) {
	resp, err := c.cdn.R().SetContext(ctx).Get(url)
	if err != nil {
		return Download{}, fmt.Errorf("image fetch failed: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return Download{}, fmt.Errorf("image fetch failed: %s", resp.Status())
	}
	return Download{
		Data:     resp.Body(),
		MIMEType: PickMIMEType(resp.Header().Get("Content-Type")),
	}, nil
}
