package notification

import (
	"context"
	"fmt"

	"github.com/freddytc/checkout-agent/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier delivers the checkout lifecycle notices the original UI
// showed in-page: hold expired, purchase cancelled, purchase completed.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyHoldExpired(ctx context.Context, s *domain.CheckoutSession) {
	text := fmt.Sprintf(
		"*Tu reserva ha expirado*\n\n"+"Evento: %s\n"+"Las entradas han sido liberadas.",
		s.Event.Name,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCheckoutCancelled(ctx context.Context, s *domain.CheckoutSession) {
	text := fmt.Sprintf(
		"*Compra cancelada*\n\n"+"Evento: %s\n"+"Las entradas reservadas fueron liberadas.",
		s.Event.Name,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPurchaseCompleted(ctx context.Context, s *domain.CheckoutSession) {
	text := fmt.Sprintf(
		"*¡Compra exitosa!*\n\n"+"Evento: %s\n"+"Total: S/ %.2f\n"+"Tus tickets ya están disponibles.",
		s.Event.Name, s.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
