package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/reminder"
)

func TestComputeScheduleIntent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	base := reminder.Reminder{
		ID:       "r1",
		TaskID:   "t1",
		Enabled:  true,
		FireTime: now.Add(time.Hour),
	}

	t.Run("future enabled reminder is scheduled", func(t *testing.T) {
		intent, ok := ComputeScheduleIntent(base, now)
		require.True(t, ok)
		assert.Equal(t, "reminder_r1", intent.JobKey)
		assert.Equal(t, time.Hour, intent.Delay)
		assert.Equal(t, base.FireTime, intent.RunAt)
		assert.Equal(t, "r1", intent.ReminderID)
		assert.Equal(t, "t1", intent.TaskID)
		assert.Positive(t, intent.Delay)
	})

	t.Run("past reminder is never scheduled", func(t *testing.T) {
		r := base
		r.FireTime = now.Add(-24 * time.Hour)
		_, ok := ComputeScheduleIntent(r, now)
		assert.False(t, ok)
	})

	t.Run("fire time equal to now is not scheduled", func(t *testing.T) {
		r := base
		r.FireTime = now
		_, ok := ComputeScheduleIntent(r, now)
		assert.False(t, ok)
	})

	t.Run("disabled reminder is never scheduled", func(t *testing.T) {
		r := base
		r.Enabled = false
		for _, fire := range []time.Time{now.Add(-time.Hour), now, now.Add(time.Hour)} {
			r.FireTime = fire
			_, ok := ComputeScheduleIntent(r, now)
			assert.False(t, ok)
		}
	})
}
