package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/jobs"
	"taskflow/internal/notify"
	"taskflow/internal/reminder"
	"taskflow/internal/settings"
	"taskflow/internal/task"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&task.Task{},
		&reminder.Reminder{},
		&jobs.Job{},
		&notify.Notification{},
		&settings.Settings{},
		&auth.User{},
	); err != nil {
		return err
	}

	// Tag filter (GIN for text[])
	if err := gdb.Exec(`create index if not exists idx_tasks_tags on tasks using gin (tags);`).Error; err != nil {
		return err
	}

	// Presenter replace semantics: one notification row per (user, key)
	if err := gdb.Exec(`create unique index if not exists uq_notifications_user_key on notifications(user_id, key);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_tasks_user_modified on tasks(user_id, modified_at desc);`,
		`create index if not exists idx_tasks_user_due on tasks(user_id, due_date);`,
		`create index if not exists idx_reminders_task on reminders(task_id, fire_time);`,
		`create index if not exists idx_reminders_due on reminders(enabled, fire_time);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_key on jobs(key, status);`,
		`create index if not exists idx_jobs_tag on jobs(tag, status);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
