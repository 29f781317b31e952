// Package tasks implements the scheduled tasks of the relay bot, their
// dependencies and their registration.
package tasks

import (
	"context"
	"log/slog"
)

// Prober checks that the completion API is reachable with the configured key.
type Prober interface {
	Ping(ctx context.Context) error
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Prober Prober
}
