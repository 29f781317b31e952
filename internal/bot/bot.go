// Package bot implements the lifecycle of the relay bot: it runs Telegram
// polling, the task scheduler and the optional metrics endpoint together and
// stops them all when the context is cancelled.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"golang.org/x/sync/errgroup"

	"github.com/edgard/deepseekbot/internal/metrics"
)

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger        *slog.Logger
	tgBot         *tgbot.Bot
	scheduler     *Scheduler
	metricsServer *metrics.Server
}

// NewBot creates a new orchestrator. A nil metricsServer disables the
// metrics endpoint.
func NewBot(logger *slog.Logger, tgBot *tgbot.Bot, scheduler *Scheduler, metricsServer *metrics.Server) *Bot {
	return &Bot{
		logger:        logger.With("component", "bot_orchestrator"),
		tgBot:         tgBot,
		scheduler:     scheduler,
		metricsServer: metricsServer,
	}
}

// Run starts the bot and all its components, handling graceful shutdown on context cancellation.
// It returns an error if any component fails during startup or execution.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("🤖 Бот запущен!")

		b.tgBot.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	if b.scheduler != nil {
		g.Go(func() error {
			b.logger.Info("Starting scheduler...")
			if err := b.scheduler.Start(gCtx); err != nil {
				b.logger.Error("Failed to start scheduler", "error", err)
				return fmt.Errorf("failed to start scheduler: %w", err)
			}

			<-gCtx.Done()
			b.logger.Info("Shutdown signal received, stopping scheduler...")

			if err := b.scheduler.Stop(); err != nil {
				b.logger.Error("Error stopping scheduler", "error", err)
			}
			return nil
		})
	}

	if b.metricsServer != nil {
		g.Go(func() error {
			return b.metricsServer.Run(gCtx)
		})
	}

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
