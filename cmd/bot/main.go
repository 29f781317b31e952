// Package main contains the entrypoint for the DeepSeek relay bot.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/edgard/deepseekbot/internal/bot"
	"github.com/edgard/deepseekbot/internal/bot/handlers"
	"github.com/edgard/deepseekbot/internal/bot/tasks"
	"github.com/edgard/deepseekbot/internal/config"
	"github.com/edgard/deepseekbot/internal/deepseek"
	"github.com/edgard/deepseekbot/internal/logger"
	"github.com/edgard/deepseekbot/internal/metrics"
	"github.com/edgard/deepseekbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// completion client, bot, scheduler, metrics), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("deepseekbot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "./config.yaml", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	bootLog := slog.New(slog.NewTextHandler(stderr, nil))
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	client := deepseek.New(cfg.DeepSeek, log)

	hDeps := handlers.HandlerDeps{
		Logger:    log,
		Config:    cfg,
		Completer: client,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		Prober: client,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log), handlers.Recover(log), handlers.CountUpdates()),
		tgbot.WithDefaultHandler(handlers.NewTextHandler(hDeps)),
		tgbot.WithErrorsHandler(telegram.ErrorsHandler(log)),
		tgbot.WithHTTPClient(cfg.Telegram.PollTimeout, &http.Client{Timeout: cfg.Telegram.PollTimeout}),
		tgbot.WithSkipGetMe(),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", me.ID, "bot_username", me.Username)
	hDeps.BotUsername = me.Username

	if _, err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	var metricsServer *metrics.Server
	if cfg.Metrics.Addr != "" {
		metricsServer = metrics.NewServer(cfg.Metrics.Addr, prometheus.DefaultGatherer, log)
	}

	app := bot.NewBot(log, tg, sched, metricsServer)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
