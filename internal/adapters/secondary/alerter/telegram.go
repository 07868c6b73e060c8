package alerter

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client sends ops alerts to a Telegram group
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

// NewClient creates an alerter. Returns nil when cfg is nil or the token is
// empty: callers treat a nil alerter as "alerts disabled".
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.BotToken == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Warn("failed to init alerter bot, alerts disabled", "error", err)
		return nil
	}

	return &Client{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    log,
	}
}

// SendAlert posts a message to the alert chat
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.bot == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	msg := tgbotapi.NewMessage(c.chatID, message)
	if _, err := c.bot.Send(msg); err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.Debug("alert sent successfully", "chat_id", c.chatID)
	return nil
}
