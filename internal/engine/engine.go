// Package engine consolidates the reminder lifecycle policy: whether a
// reminder is scheduled, what happens when its job fires, how repeating
// reminders advance, and how task lifecycle events cascade. All mutable
// state lives behind the injected collaborators; the engine itself holds
// none between invocations.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskflow/internal/reminder"
	"taskflow/internal/task"
)

// TaskStore is the task half of the entity store. Lookups return nil, nil
// when the record does not exist.
type TaskStore interface {
	GetTask(ctx context.Context, id string) (*task.Task, error)
	SetCompletion(ctx context.Context, id string, completed bool) error
	DeleteTask(ctx context.Context, id string) error
}

// ReminderStore is the reminder half of the entity store. Lookups return
// nil, nil when the record does not exist.
type ReminderStore interface {
	GetReminder(ctx context.Context, id string) (*reminder.Reminder, error)
	SaveReminder(ctx context.Context, r reminder.Reminder) error
	DeleteRemindersForTask(ctx context.Context, taskID string) error
	ListFiredBetween(ctx context.Context, from, to time.Time) ([]reminder.Reminder, error)
}

// JobScheduler is the deferred job facility. Schedule uses REPLACE-by-key
// disposition; Cancel and CancelAllTagged are idempotent no-ops when nothing
// is pending.
type JobScheduler interface {
	Schedule(ctx context.Context, userID uint64, intent Intent) error
	Cancel(ctx context.Context, jobKey string) error
	CancelAllTagged(ctx context.Context, tag string) error
}

// Notification is what the presenter is asked to render. Key is stable per
// reminder so repeated presentation replaces rather than stacks.
type Notification struct {
	Key        string
	UserID     uint64
	TaskID     string
	ReminderID string
	Title      string
	Body       string
}

type Presenter interface {
	Present(ctx context.Context, n Notification) error
}

// Prefs reports per-user delivery gating. A muted user's fired jobs are
// suppressed without presenting or advancing, on the job path and the sweep
// path alike.
type Prefs interface {
	ReminderNotificationsEnabled(ctx context.Context, userID uint64) (bool, error)
}

type Engine struct {
	Tasks     TaskStore
	Reminders ReminderStore
	Jobs      JobScheduler
	Notify    Presenter

	// Prefs may be nil, meaning no user is ever muted.
	Prefs Prefs
}

// ScheduleReminder cancels any pending job for the reminder and, when the
// scheduling policy allows, hands a fresh intent to the job facility.
func (e *Engine) ScheduleReminder(ctx context.Context, r reminder.Reminder, now time.Time) error {
	if err := e.Jobs.Cancel(ctx, JobKey(r.ID)); err != nil {
		return err
	}
	intent, ok := ComputeScheduleIntent(r, now)
	if !ok {
		return nil
	}
	return e.Jobs.Schedule(ctx, r.UserID, intent)
}

// CancelReminder drops any pending job for the reminder. Safe to call when
// none is scheduled.
func (e *Engine) CancelReminder(ctx context.Context, reminderID string) error {
	return e.Jobs.Cancel(ctx, JobKey(reminderID))
}

// OnReminderFired handles a fired job. It re-fetches the reminder and its
// task fresh from the store, never trusting state captured at schedule time,
// then applies the decision table. On Present it invokes the presenter; on
// Advance it persists the advanced reminder under the same identity and
// re-schedules it. Store errors propagate so the job facility's retry policy
// can take over.
func (e *Engine) OnReminderFired(ctx context.Context, reminderID string, now time.Time) (FireDecision, error) {
	r, err := e.Reminders.GetReminder(ctx, reminderID)
	if err != nil {
		return FireDecision{}, err
	}

	if r != nil && e.Prefs != nil {
		enabled, err := e.Prefs.ReminderNotificationsEnabled(ctx, r.UserID)
		if err != nil {
			return FireDecision{}, err
		}
		if !enabled {
			return FireDecision{Outcome: Suppress}, nil
		}
	}

	var t *task.Task
	if r != nil {
		t, err = e.Tasks.GetTask(ctx, r.TaskID)
		if err != nil {
			return FireDecision{}, err
		}
	}

	d := Decide(r, t)
	if d.Outcome != Present {
		return d, nil
	}

	err = e.Notify.Present(ctx, Notification{
		Key:        JobKey(r.ID),
		UserID:     r.UserID,
		TaskID:     t.ID,
		ReminderID: r.ID,
		Title:      d.Title,
		Body:       d.Body,
	})
	if err != nil {
		return d, err
	}

	if d.Advance {
		// A job that fired several intervals late would otherwise advance to
		// a fire time still in the past, which the scheduling policy declines,
		// and the repeat chain would die. Advance until the next occurrence is
		// in the future.
		next := Advance(*r)
		for !next.FireTime.After(now) {
			next = Advance(next)
		}
		if err := e.Reminders.SaveReminder(ctx, next); err != nil {
			return d, err
		}
		if err := e.ScheduleReminder(ctx, next, now); err != nil {
			return d, err
		}
	}

	return d, nil
}

// OnTaskDeleted enforces the cascade: cancel every job tagged with the task,
// delete the task's reminders, then delete the task. The ordering keeps a
// crash mid-sequence from leaving an orphan job for a missing task; even if
// it is violated, the fire-time decision table suppresses the orphan.
func (e *Engine) OnTaskDeleted(ctx context.Context, taskID string) error {
	if err := e.Jobs.CancelAllTagged(ctx, taskID); err != nil {
		return err
	}
	if err := e.Reminders.DeleteRemindersForTask(ctx, taskID); err != nil {
		return err
	}
	return e.Tasks.DeleteTask(ctx, taskID)
}

// OnTaskCompleted flips the completion flag. Reminders are deliberately not
// cancelled here: jobs stay scheduled and are suppressed at fire time by the
// completed-task rule, avoiding a second cascade path.
func (e *Engine) OnTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	return e.Tasks.SetCompletion(ctx, taskID, completed)
}

// Sweep re-applies the fire decision to every reminder whose fire time fell
// within (now-lookahead, now]. It compensates for individual jobs lost to
// restarts; the presenter's key replacement absorbs the resulting
// at-least-once delivery.
func (e *Engine) Sweep(ctx context.Context, now time.Time, lookahead time.Duration) error {
	due, err := e.Reminders.ListFiredBetween(ctx, now.Add(-lookahead), now)
	if err != nil {
		return err
	}
	var errs []error
	for _, r := range due {
		if _, err := e.OnReminderFired(ctx, r.ID, now); err != nil {
			errs = append(errs, fmt.Errorf("reminder %s: %w", r.ID, err))
		}
	}
	return errors.Join(errs...)
}
