package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")

	var stderr bytes.Buffer
	configPath := filepath.Join(t.TempDir(), "absent.yaml")

	code := run(context.Background(), []string{"-config", configPath}, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Failed to load configuration") {
		t.Errorf("stderr does not report the configuration failure: %q", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"-no-such-flag"}, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
