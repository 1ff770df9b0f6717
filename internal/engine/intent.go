package engine

import (
	"time"

	"taskflow/internal/reminder"
)

// Intent is a transient request to the deferred job facility. It is never
// persisted by the engine; the jobs layer records it with REPLACE-by-key
// disposition so re-saving a reminder supersedes any pending job.
type Intent struct {
	JobKey     string
	Delay      time.Duration
	RunAt      time.Time
	ReminderID string
	TaskID     string
}

// JobKey derives the deterministic job name for a reminder.
func JobKey(reminderID string) string {
	return "reminder_" + reminderID
}

// ComputeScheduleIntent decides whether a reminder should be handed to the
// job facility and with what delay. It returns false when the reminder is
// disabled or its fire time is not strictly in the future: past reminders
// are never fired retroactively.
func ComputeScheduleIntent(r reminder.Reminder, now time.Time) (Intent, bool) {
	if !r.Enabled {
		return Intent{}, false
	}
	if !r.FireTime.After(now) {
		return Intent{}, false
	}

	return Intent{
		JobKey:     JobKey(r.ID),
		Delay:      r.FireTime.Sub(now),
		RunAt:      r.FireTime,
		ReminderID: r.ID,
		TaskID:     r.TaskID,
	}, true
}
