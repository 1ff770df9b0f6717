// Package seed generates demo tasks and reminders for a throwaway
// environment. It runs only behind the SEED_DEMO_DATA flag.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/engine"
	"taskflow/internal/reminder"
	"taskflow/internal/task"
)

const demoEmail = "demo@taskflow.local"

// Run ensures the demo user exists and, when it has no tasks yet, inserts
// the demo set. Idempotent across restarts.
func Run(ctx context.Context, gdb *gorm.DB, tasks *task.Service, reminders *reminder.Service, eng *engine.Engine) error {
	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	u := auth.User{Email: demoEmail, PasswordHash: hash}
	if err := gdb.WithContext(ctx).Where("email = ?", demoEmail).FirstOrCreate(&u).Error; err != nil {
		return err
	}

	var count int64
	if err := gdb.WithContext(ctx).Model(&task.Task{}).Where("user_id = ?", u.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return generate(ctx, u.ID, tasks, reminders, eng)
}

type demoTask struct {
	in  task.SaveInput
	due time.Duration
}

var demoTasks = []demoTask{
	{
		in: task.SaveInput{
			Title:       "Complete project proposal",
			Description: "Finalize the project proposal for the client meeting",
			Priority:    task.PriorityHigh,
			Category:    task.CategoryWork,
			Tags:        []string{"project", "client", "deadline"},
		},
		due: 48 * time.Hour,
	},
	{
		in: task.SaveInput{
			Title:       "Grocery shopping",
			Description: "Buy milk, eggs, bread, and vegetables",
			Priority:    task.PriorityMedium,
			Category:    task.CategoryShopping,
			Tags:        []string{"groceries", "food"},
		},
		due: 24 * time.Hour,
	},
	{
		in: task.SaveInput{
			Title:       "Schedule dentist appointment",
			Description: "Call the dentist to schedule a cleaning appointment",
			Priority:    task.PriorityMedium,
			Category:    task.CategoryHealth,
			Tags:        []string{"health", "appointment"},
		},
		due: 5 * 24 * time.Hour,
	},
	{
		in: task.SaveInput{
			Title:       "Pay utility bills",
			Description: "Pay electricity, water and internet bills",
			Priority:    task.PriorityHigh,
			Category:    task.CategoryFinance,
			Tags:        []string{"bills", "monthly"},
		},
		due: 7 * 24 * time.Hour,
	},
	{
		in: task.SaveInput{
			Title:       "Clean garage",
			Description: "Sort out tools and donate unused items",
			Priority:    task.PriorityLow,
			Category:    task.CategoryPersonal,
			Tags:        []string{"home", "cleaning"},
		},
		due: 10 * 24 * time.Hour,
	},
}

// generate inserts the demo set for the user and schedules each reminder
// through the engine, so seeded data exercises the same path as user input.
func generate(ctx context.Context, userID uint64, tasks *task.Service, reminders *reminder.Service, eng *engine.Engine) error {
	now := time.Now()

	for i, d := range demoTasks {
		dd := now.Add(d.due)
		d.in.DueDate = &dd

		t, err := tasks.Save(ctx, userID, d.in)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", d.in.Title, err)
		}

		r, err := reminders.Save(ctx, userID, reminder.SaveInput{
			TaskID:   t.ID,
			FireTime: dd.Add(-2 * time.Hour),
			Title:    "Reminder for: " + t.Title,
			Message:  "Don't forget to " + strings.ToLower(t.Title),
			Enabled:  true,
		})
		if err != nil {
			return fmt.Errorf("seed reminder for %q: %w", t.Title, err)
		}
		if err := eng.ScheduleReminder(ctx, r, now); err != nil {
			return err
		}

		// A second, final reminder for every other task.
		if i%2 == 0 {
			r, err := reminders.Save(ctx, userID, reminder.SaveInput{
				TaskID:   t.ID,
				FireTime: dd.Add(-1 * time.Hour),
				Title:    "Final reminder: " + t.Title,
				Message:  "Last reminder to " + strings.ToLower(t.Title),
				Enabled:  true,
			})
			if err != nil {
				return fmt.Errorf("seed reminder for %q: %w", t.Title, err)
			}
			if err := eng.ScheduleReminder(ctx, r, now); err != nil {
				return err
			}
		}
	}

	return nil
}
