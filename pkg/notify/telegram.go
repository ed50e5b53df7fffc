// Package notify delivers content items to Telegram chats.
package notify

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	tele "gopkg.in/telebot.v4"

	"github.com/umputun/cheerbot/pkg/domain"
)

// Telegram sends formatted content items via the bot API. Outbound only:
// long polling is started by the chat surface, not here.
type Telegram struct {
	bot sender
}

// sender is the telebot surface used, split out for tests
type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramConfig holds bot credentials and timeouts.
type TelegramConfig struct {
	Token   string
	Timeout time.Duration // bot API client timeout, default 10s
}

// NewTelegram creates the Telegram notifier and verifies the token against
// the bot API.
func NewTelegram(cfg TelegramConfig) (*Telegram, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}

	lgr.Printf("[INFO] telegram notifier ready, bot %s", bot.Me.Username)
	return &Telegram{bot: bot}, nil
}

// Send posts the formatted item to the chat. Context cancellation is
// checked before the call; the bot API client enforces its own timeout.
func (t *Telegram) Send(ctx context.Context, chatID int64, item domain.ContentItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.bot.Send(tele.ChatID(chatID), formatItem(item))
	return err
}

// formatItem renders a content item as plain text with optional attribution.
func formatItem(item domain.ContentItem) string {
	text := strings.TrimSpace(item.Text)
	if author := strings.TrimSpace(item.Author); author != "" {
		text += "\n\n— " + author
	}
	return text
}
