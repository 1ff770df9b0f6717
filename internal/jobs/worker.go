package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"taskflow/internal/engine"
)

type Worker struct {
	ID     string
	Repo   *Repo
	Engine *engine.Engine

	// PollInterval defaults to 800ms when zero.
	PollInterval time.Duration
}

func (w *Worker) Run(ctx context.Context) {
	interval := w.PollInterval
	if interval <= 0 {
		interval = 800 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeReminderFire:
		w.handleReminderFire(ctx, job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleReminderFire(ctx context.Context, job *Job) {
	var p FirePayload
	if err := json.Unmarshal(job.Payload, &p); err != nil || p.ReminderID == "" {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	// The engine's Prefs gate suppresses jobs for muted users; the job still
	// completes normally.
	d, err := w.Engine.OnReminderFired(ctx, p.ReminderID, time.Now())
	if err != nil {
		w.retry(job, "fire handling error: "+err.Error())
		return
	}

	if d.Outcome == engine.Present {
		log.Printf("[REMINDER] user=%d task=%s reminder=%s title=%q\n",
			job.UserID, p.TaskID, p.ReminderID, d.Title)
	}
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	next := time.Now().Add(Backoff(attempts))
	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}

// Backoff returns the exponential retry delay for the attempt, capped at
// ten minutes.
func Backoff(attempts int) time.Duration {
	d := time.Duration(1<<uint(attempts)) * time.Second
	if d > 600*time.Second {
		return 600 * time.Second
	}
	return d
}
