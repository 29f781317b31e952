package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edgard/deepseekbot/internal/deepseek"
	"github.com/edgard/deepseekbot/internal/metrics"
)

// newUpstreamProbeTask creates the scheduled task that checks DeepSeek
// availability and publishes the result as the upstream gauge.
func newUpstreamProbeTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "upstream_probe")

	return func(ctx context.Context) error {
		startTime := time.Now()
		err := deps.Prober.Ping(ctx)
		duration := time.Since(startTime)

		switch {
		case errors.Is(err, deepseek.ErrAPIKeyMissing):
			metrics.SetUpstreamUp(false)
			log.WarnContext(ctx, "Skipping upstream probe, DeepSeek API key not configured")
			return nil
		case err != nil:
			metrics.SetUpstreamUp(false)
			log.ErrorContext(ctx, "Upstream probe failed", "error", err, "duration", duration)
			return fmt.Errorf("upstream probe failed: %w", err)
		}

		metrics.SetUpstreamUp(true)
		log.DebugContext(ctx, "Upstream probe succeeded", "duration", duration)
		return nil
	}
}
