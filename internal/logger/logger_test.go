package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	t.Parallel()

	var jsonBuf bytes.Buffer
	newLogger(&jsonBuf, "info", true).Info("hello", "k", "v")
	var entry map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &entry); err != nil {
		t.Fatalf("JSON logger output is not JSON: %v (%q)", err, jsonBuf.String())
	}
	if entry["msg"] != "hello" || entry["k"] != "v" {
		t.Errorf("unexpected JSON entry: %v", entry)
	}

	var textBuf bytes.Buffer
	log := newLogger(&textBuf, "warn", false)
	log.Info("dropped")
	log.Warn("kept")
	if strings.Contains(textBuf.String(), "dropped") {
		t.Errorf("info entry written at warn level: %q", textBuf.String())
	}
	if !strings.Contains(textBuf.String(), "msg=kept") {
		t.Errorf("warn entry missing: %q", textBuf.String())
	}
}

func TestMiddlewareCallsNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "debug", false)

	called := false
	handler := Middleware(log)(func(ctx context.Context, _ *bot.Bot, _ *models.Update) {
		called = true
	})

	handler(context.Background(), nil, &models.Update{
		ID: 10,
		Message: &models.Message{
			ID:   3,
			Chat: models.Chat{ID: 42},
			From: &models.User{ID: 7},
			Text: "hello there",
		},
	})

	if !called {
		t.Fatal("middleware did not call next handler")
	}
	out := buf.String()
	for _, want := range []string{"Processing update", "Finished processing update", "chat_id=42", "user_id=7", "update_type=text"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestUpdateKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		update *models.Update
		want   string
	}{
		{"nil", nil, "none"},
		{"text", &models.Update{Message: &models.Message{Text: "hi"}}, "text"},
		{"photo", &models.Update{Message: &models.Message{}}, "message"},
		{"edited", &models.Update{EditedMessage: &models.Message{Text: "x"}}, "edited_message"},
		{"callback", &models.Update{CallbackQuery: &models.CallbackQuery{ID: "1"}}, "callback_query"},
		{"other", &models.Update{}, "other"},
	}
	for _, tt := range tests {
		if got := UpdateKind(tt.update); got != tt.want {
			t.Errorf("%s: UpdateKind() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	if got := truncateString("short", 10); got != "short" {
		t.Errorf("truncateString() = %q", got)
	}
	if got := truncateString("привет, мир", 6); got != "при..." {
		t.Errorf("truncateString() = %q, want %q", got, "при...")
	}
	if got := truncateString("abcdef", 2); got != "..." {
		t.Errorf("truncateString() = %q, want %q", got, "...")
	}
}
