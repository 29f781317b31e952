package telegram

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deepseekbot/internal/telegram/telegramtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewTelegramBotEmptyToken(t *testing.T) {
	t.Parallel()

	b, err := NewTelegramBot("", discardLogger())
	if err == nil {
		t.Fatal("NewTelegramBot() expected error for empty token")
	}
	if b != nil {
		t.Error("NewTelegramBot() returned a bot for empty token")
	}
}

func TestNewTelegramBot(t *testing.T) {
	t.Parallel()

	srv := telegramtest.NewServer(t)
	b, err := NewTelegramBot(telegramtest.Token, discardLogger(), bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	if err != nil {
		t.Fatalf("NewTelegramBot() error = %v", err)
	}
	if b == nil {
		t.Fatal("NewTelegramBot() returned nil bot")
	}
}

func TestApplyMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) bot.Middleware {
		return func(next bot.HandlerFunc) bot.HandlerFunc {
			return func(ctx context.Context, b *bot.Bot, update *models.Update) {
				order = append(order, name)
				next(ctx, b, update)
			}
		}
	}

	h := applyMiddleware(func(context.Context, *bot.Bot, *models.Update) {
		order = append(order, "handler")
	}, []bot.Middleware{mw("outer"), mw("inner")})
	h(context.Background(), nil, &models.Update{})

	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRegisterHandlers(t *testing.T) {
	t.Parallel()

	srv := telegramtest.NewServer(t)
	b := srv.Bot(t)
	noop := func(context.Context, *bot.Bot, *models.Update) {}

	registry := map[string]RegisteredHandler{
		"start": {HandlerType: bot.HandlerTypeMessageText, Pattern: "/start", Handler: noop, MatchType: bot.MatchTypeCommandStartOnly},
		"help":  {HandlerType: bot.HandlerTypeMessageText, Pattern: "/help", Handler: noop, MatchType: bot.MatchTypeCommandStartOnly},
		"nil":   {HandlerType: bot.HandlerTypeMessageText, Pattern: "/nil"},
		"func":  {MatchFunc: func(*models.Update) bool { return false }, Handler: noop},
	}

	n, err := RegisterHandlers(b, discardLogger(), registry)
	if err != nil {
		t.Fatalf("RegisterHandlers() error = %v", err)
	}
	if n != 3 {
		t.Errorf("RegisterHandlers() registered %d handlers, want 3", n)
	}
}

func TestRegisterHandlersNilBot(t *testing.T) {
	t.Parallel()

	if _, err := RegisterHandlers(nil, discardLogger(), nil); err == nil {
		t.Fatal("RegisterHandlers() expected error for nil bot")
	}
}

func TestTokenPrefix(t *testing.T) {
	t.Parallel()

	if got := tokenPrefix("short"); got != "***" {
		t.Errorf("tokenPrefix(short) = %q", got)
	}
	if got := tokenPrefix("1234567890:ABC"); got != "12345678..." {
		t.Errorf("tokenPrefix(long) = %q", got)
	}
}
