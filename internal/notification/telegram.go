package notification

import (
	"context"
	"fmt"

	"github.com/dmtkv/CourtBooker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Court reserved!*\n\n"+"Date: %s\n"+"Time: %s - %s\n"+"Court: %d",
		r.Date, r.StartTime, r.EndTime, r.CourtNumber,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCoachBookingConfirmed(ctx context.Context, user *domain.User, b *domain.CoachBooking) {
	text := fmt.Sprintf(
		"*Coach session confirmed!*\n\n"+"Sport: %s\n"+"Date: %s\n"+"Time: %s - %s",
		b.Sport, b.Date, b.StartTime, b.EndTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEventJoined(ctx context.Context, user *domain.User, e *domain.Event) {
	text := fmt.Sprintf(
		"*You joined an event!*\n\n"+"Event: %s\n"+"Date: %s\n"+"Time: %s - %s",
		e.Title, e.EventDate, e.StartTime, e.EndTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
