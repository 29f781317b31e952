package handlers

import (
	"context"
	"log/slog"

	"github.com/edgard/deepseekbot/internal/config"
)

// Completer produces a completion for a single user message.
type Completer interface {
	Complete(ctx context.Context, text string) (string, error)
}

// HandlerDeps provides dependencies for Telegram command handlers.
// BotUsername is the bot's own username as returned by getMe, used to accept
// commands addressed as /command@username in groups.
type HandlerDeps struct {
	Logger      *slog.Logger
	Config      *config.Config
	Completer   Completer
	BotUsername string
}
