package events

import (
	"context"
	"log/slog"
	"time"
)

// RunDaemon runs the pipeline once immediately and then on a fixed
// interval until the context is canceled. the sources aren't real-time
// feeds, a few passes a day keeps the calendar fresh.
func (s Service) RunDaemon(ctx context.Context, interval time.Duration) {
	if interval == 0 {
		interval = 6 * time.Hour
	}

	_, err := s.Run(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "pipeline run failed", "err", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := s.Run(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "pipeline run failed", "err", err)
			}
		}
	}
}
