// Package logger builds the application's slog logger and the update
// logging middleware for the Telegram bot.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewLogger creates a slog Logger writing to stdout with the given level.
// If jsonOutput is true, logs are formatted as JSON, otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	return newLogger(os.Stdout, levelStr, jsonOutput)
}

func newLogger(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a configuration level name to a slog.Level, defaulting to info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware logs every incoming update together with its processing time.
func Middleware(log *slog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			startTime := time.Now()
			logEntry := log.With("update_id", update.ID, "update_type", UpdateKind(update))

			if msg := update.Message; msg != nil {
				logEntry = logEntry.With(
					"message_id", msg.ID,
					"chat_id", msg.Chat.ID,
					"text_preview", truncateString(msg.Text, 50),
				)
				if msg.From != nil {
					logEntry = logEntry.With("user_id", msg.From.ID)
				}
			}

			logEntry.InfoContext(ctx, "Processing update")
			next(ctx, b, update)
			logEntry.InfoContext(ctx, "Finished processing update", "duration", time.Since(startTime))
		}
	}
}

// UpdateKind names the payload carried by an update.
func UpdateKind(update *models.Update) string {
	switch {
	case update == nil:
		return "none"
	case update.Message != nil && update.Message.Text != "":
		return "text"
	case update.Message != nil:
		return "message"
	case update.EditedMessage != nil:
		return "edited_message"
	case update.CallbackQuery != nil:
		return "callback_query"
	default:
		return "other"
	}
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}
