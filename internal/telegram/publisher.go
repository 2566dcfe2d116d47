package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cat-poster/internal/logger"
)

// sender is the subset of tgbotapi.BotAPI used for publishing.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Photo is an image ready to upload.
type Photo struct {
	Name    string
	Data    []byte
	AltText string
}

// Result identifies a published post.
type Result struct {
	MessageID int
	URL       string
}

// Publisher posts photos to one Telegram chat or channel.
type Publisher struct {
	s        sender
	username string
	chatID   int64
	channel  string
}

// New authenticates the bot (GetMe) and targets chat, which is a numeric chat ID or an @channel name.
func New(botToken, chat string) (*Publisher, error) {
	if botToken == "" {
		return nil, errors.New("telegram bot token is empty")
	}
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return newPublisher(api, api.Self.UserName, chat)
}

func newPublisher(s sender, username, chat string) (*Publisher, error) {
	p := &Publisher{s: s, username: username}
	chat = strings.TrimSpace(chat)
	switch {
	case chat == "":
		return nil, errors.New("telegram chat is empty")
	case strings.HasPrefix(chat, "@"):
		p.channel = chat
	default:
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("telegram chat %q is neither a numeric ID nor an @channel", chat)
		}
		p.chatID = id
	}
	return p, nil
}

// Username returns the authenticated bot's username.
func (p *Publisher) Username() string { return p.username }

// PublishPhoto uploads the photo with caption and returns the message ID and, for public channels, its URL.
func (p *Publisher) PublishPhoto(ctx context.Context, photo Photo, caption string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	file := tgbotapi.FileBytes{Name: photo.Name, Bytes: photo.Data}

	var cfg tgbotapi.PhotoConfig
	if p.channel != "" {
		cfg = tgbotapi.NewPhotoToChannel(p.channel, file)
	} else {
		cfg = tgbotapi.NewPhoto(p.chatID, file)
	}
	cfg.Caption = caption

	if photo.AltText != "" {
		logger.FromContext(ctx).Debugf("alt text (not supported by Telegram): %s", photo.AltText)
	}

	msg, err := p.s.Send(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("send photo: %w", err)
	}
	if msg.MessageID == 0 {
		return Result{}, errors.New("photo sent but no message id returned")
	}
	return Result{MessageID: msg.MessageID, URL: p.postURL(msg)}, nil
}

func (p *Publisher) postURL(msg tgbotapi.Message) string {
	name := strings.TrimPrefix(p.channel, "@")
	if msg.Chat != nil && msg.Chat.UserName != "" {
		name = msg.Chat.UserName
	}
	if name == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s/%d", name, msg.MessageID)
}
