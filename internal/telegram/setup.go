// Package telegram wraps construction of the go-telegram bot, registration of
// handlers and the helpers used to send replies.
package telegram

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-telegram/bot"
)

// RegisteredHandler describes a handler together with the pattern that routes
// updates to it and the middleware wrapped around it. When MatchFunc is set it
// decides routing and HandlerType, Pattern and MatchType are ignored.
type RegisteredHandler struct {
	HandlerType bot.HandlerType
	Pattern     string
	Handler     bot.HandlerFunc
	Middleware  []bot.Middleware
	MatchType   bot.MatchType
	MatchFunc   bot.MatchFunc
}

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

// ErrorsHandler returns a polling error callback that logs through logger.
func ErrorsHandler(logger *slog.Logger) bot.ErrorsHandler {
	log := logger.With("component", "telegram_bot")
	return func(err error) {
		log.Error("Telegram polling error", "error", err)
	}
}

// applyMiddleware wraps a handler function with a slice of middleware.
// The first middleware in the slice is the outermost.
func applyMiddleware(handler bot.HandlerFunc, mw []bot.Middleware) bot.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// RegisterHandlers registers every handler of the registry with the bot and
// returns the number of handlers registered.
func RegisterHandlers(b *bot.Bot, logger *slog.Logger, registry map[string]RegisteredHandler) (int, error) {
	if b == nil {
		return 0, fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	if len(registry) == 0 {
		log.Warn("No handlers provided for registration.")
		return 0, nil
	}

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	registered := 0
	for _, name := range names {
		regHandler := registry[name]
		if regHandler.Handler == nil {
			log.Warn("Skipping registration for nil handler", "name", name)
			continue
		}

		finalHandler := applyMiddleware(regHandler.Handler, regHandler.Middleware)
		if regHandler.MatchFunc != nil {
			b.RegisterHandlerMatchFunc(regHandler.MatchFunc, finalHandler)
		} else {
			b.RegisterHandler(regHandler.HandlerType, regHandler.Pattern, regHandler.MatchType, finalHandler)
		}
		log.Debug("Registered handler", "name", name, "pattern", regHandler.Pattern, "middleware_count", len(regHandler.Middleware))
		registered++
	}

	log.Info("Registered Telegram handlers successfully", "count", registered)
	return registered, nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}
