// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"
	"log/slog"
	"runtime/debug"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deepseekbot/internal/logger"
	"github.com/edgard/deepseekbot/internal/metrics"
)

// Recover creates a middleware that logs and swallows a panic raised by the
// wrapped handler, so a single bad update cannot stop the polling loop.
func Recover(logger *slog.Logger) tgbot.Middleware {
	log := logger.With("middleware", "Recover")
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(ctx, "Panic recovered in handler",
						"panic", r,
						"update_id", update.ID,
						"stack", string(debug.Stack()),
					)
				}
			}()
			next(ctx, bot, update)
		}
	}
}

// CountUpdates creates a middleware that counts every incoming update by kind.
func CountUpdates() tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			metrics.UpdateReceived(logger.UpdateKind(update))
			next(ctx, bot, update)
		}
	}
}
