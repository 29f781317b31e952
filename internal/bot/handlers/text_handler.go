package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deepseekbot/internal/deepseek"
	"github.com/edgard/deepseekbot/internal/metrics"
	"github.com/edgard/deepseekbot/internal/telegram"
)

// NewTextHandler returns the relay handler that answers a text message with a
// DeepSeek completion. It is meant to be installed as the bot's default handler.
func NewTextHandler(deps HandlerDeps) bot.HandlerFunc {
	return textHandler{deps}.Handle
}

type textHandler struct {
	deps HandlerDeps
}

func (h textHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "text")

	if update.Message == nil || update.Message.Text == "" {
		log.DebugContext(ctx, "Ignoring update without message text", "update_id", update.ID)
		return
	}

	msg := update.Message
	chatID := msg.Chat.ID
	log = log.With("chat_id", chatID, "message_id", msg.ID)

	if err := telegram.SendTyping(ctx, b, chatID); err != nil {
		log.DebugContext(ctx, "Failed to send typing action", "error", err)
	}

	answer, err := h.deps.Completer.Complete(ctx, msg.Text)
	if err != nil {
		reply := h.deps.Config.Messages.GeneralError
		outcome := metrics.OutcomeAPIError
		if errors.Is(err, deepseek.ErrAPIKeyMissing) {
			reply = h.deps.Config.Messages.APIKeyMissing
			outcome = metrics.OutcomeKeyMissing
			log.WarnContext(ctx, "DeepSeek API key not configured, cannot answer")
		} else {
			log.ErrorContext(ctx, "Failed to get completion", "error", err)
		}

		metrics.RecordReply(outcome)
		h.sendReply(ctx, b, log, chatID, msg.ID, reply)
		return
	}

	metrics.RecordReply(metrics.OutcomeOK)
	h.sendReply(ctx, b, log, chatID, msg.ID, answer)
}

func (h textHandler) sendReply(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, replyTo int, text string) {
	if err := telegram.SendText(ctx, b, chatID, replyTo, text); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err)
		return
	}
	log.DebugContext(ctx, "Reply sent", "length", len(text))
}
