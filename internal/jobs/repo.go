package jobs

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"taskflow/internal/engine"
)

type Repo struct {
	DB *gorm.DB
}

// Schedule records a deferred job for the intent with REPLACE disposition:
// any pending job under the same key is dropped in the same transaction, so
// rapid successive edits cannot leave two jobs for stale state.
func (r *Repo) Schedule(ctx context.Context, userID uint64, intent engine.Intent) error {
	payload, _ := json.Marshal(FirePayload{
		ReminderID: intent.ReminderID,
		TaskID:     intent.TaskID,
	})

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`delete from jobs where key = ? and status = 'PENDING'`,
			intent.JobKey,
		).Error; err != nil {
			return err
		}

		j := Job{
			UserID:  userID,
			Key:     intent.JobKey,
			Tag:     intent.TaskID,
			Type:    TypeReminderFire,
			Payload: payload,
			RunAt:   intent.RunAt,
			Status:  "PENDING",
		}
		return tx.Create(&j).Error
	})
}

// Cancel drops any pending job under the key. A key with no pending job is
// a no-op, never an error.
func (r *Repo) Cancel(ctx context.Context, jobKey string) error {
	return r.DB.WithContext(ctx).
		Exec(`delete from jobs where key = ? and status = 'PENDING'`, jobKey).Error
}

// CancelAllTagged drops every pending job tagged with the task id.
func (r *Repo) CancelAllTagged(ctx context.Context, tag string) error {
	return r.DB.WithContext(ctx).
		Exec(`delete from jobs where tag = ? and status = 'PENDING'`, tag).Error
}

// Claim one due job atomically using SKIP LOCKED.
// Works on Postgres.
func (r *Repo) Claim(workerID string) (*Job, error) {
	var job Job
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		// requeue stuck RUNNING jobs (optional safety)
		tx.Exec(`
update jobs
set status='PENDING', locked_by=null, locked_at=null, updated_at=now()
where status='RUNNING' and locked_at is not null and locked_at < now() - interval '5 minutes'
`)

		// claim
		// FOR UPDATE SKIP LOCKED ensures no double-claim
		q := tx.Raw(`
with cte as (
  select id
  from jobs
  where status='PENDING' and run_at <= now()
  order by run_at asc
  for update skip locked
  limit 1
)
update jobs
set status='RUNNING', locked_by=?, locked_at=now(), updated_at=now()
where id in (select id from cte)
returning *;
`, workerID)

		return q.Scan(&job).Error
	})
	if err != nil {
		return nil, err
	}
	if job.ID == 0 {
		return nil, nil
	}
	return &job, nil
}

func (r *Repo) MarkDone(id uint64) error {
	return r.DB.Exec(`update jobs set status='DONE', updated_at=now() where id=?`, id).Error
}

func (r *Repo) MarkFailed(id uint64, errMsg string) error {
	return r.DB.Exec(`update jobs set status='FAILED', last_error=?, updated_at=now() where id=?`, errMsg, id).Error
}

func (r *Repo) RetryLater(id uint64, attempts int, runAt time.Time, errMsg string) error {
	return r.DB.Exec(`
update jobs
set status='PENDING',
    attempts=?,
    run_at=?,
    locked_by=null,
    locked_at=null,
    last_error=?,
    updated_at=now()
where id=?`, attempts, runAt, errMsg, id).Error
}
