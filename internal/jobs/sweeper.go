package jobs

import (
	"context"
	"log"
	"time"

	"taskflow/internal/engine"
)

// Sweeper periodically re-evaluates recently due reminders, independent of
// their per-reminder jobs. It catches jobs lost to restarts; presentation
// stays deduplicated by the notification key, so overlapping with a job
// firing for the same reminder is harmless.
type Sweeper struct {
	Engine *engine.Engine

	// Interval defaults to 15 minutes when zero; Lookahead defaults to
	// Interval so consecutive sweeps cover adjacent windows.
	Interval  time.Duration
	Lookahead time.Duration
}

func (s *Sweeper) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	lookahead := s.Lookahead
	if lookahead <= 0 {
		lookahead = interval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Engine.Sweep(ctx, time.Now(), lookahead); err != nil {
				log.Printf("sweep error: %v\n", err)
			}
		}
	}
}
