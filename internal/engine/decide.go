package engine

import (
	"taskflow/internal/reminder"
	"taskflow/internal/task"
)

type Outcome string

const (
	Suppress Outcome = "SUPPRESS"
	Present  Outcome = "PRESENT"
)

// FireDecision is the outcome of evaluating a fired job against current
// entity state. Advance is set only on Present, for repeating reminders
// with a standard interval.
type FireDecision struct {
	Outcome  Outcome
	Title    string
	Body     string
	TargetID string
	Advance  bool
}

// Decide evaluates the fire-time decision table, first match wins. Both
// arguments are the freshly re-fetched state; nil means the record no
// longer exists in the store. Deleted or stale state is never an error,
// only a suppressed notification.
func Decide(r *reminder.Reminder, t *task.Task) FireDecision {
	switch {
	case r == nil:
		return FireDecision{Outcome: Suppress}
	case !r.Enabled:
		return FireDecision{Outcome: Suppress}
	case t == nil:
		// Cascade delete should have cancelled the job already; this is
		// the defensive fallback.
		return FireDecision{Outcome: Suppress}
	case t.Completed:
		return FireDecision{Outcome: Suppress}
	}

	body := r.Message
	if body == "" {
		body = r.Title
	}

	return FireDecision{
		Outcome:  Present,
		Title:    t.Title,
		Body:     body,
		TargetID: t.ID,
		Advance:  r.Repeating && r.RepeatInterval.AutoAdvances(),
	}
}
