package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/reminder"
)

func TestAdvanceIntervals(t *testing.T) {
	fire := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval reminder.RepeatInterval
		want     time.Time
	}{
		{"daily", reminder.RepeatDaily, fire.AddDate(0, 0, 1)},
		{"weekly", reminder.RepeatWeekly, fire.AddDate(0, 0, 7)},
		{"monthly", reminder.RepeatMonthly, time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reminder.Reminder{
				ID:             "r1",
				TaskID:         "t1",
				FireTime:       fire,
				Enabled:        true,
				Repeating:      true,
				RepeatInterval: tt.interval,
			}
			got := Advance(r)
			assert.Equal(t, tt.want, got.FireTime)
			assert.True(t, got.FireTime.After(r.FireTime), "advancement must be time-monotonic")

			// Everything but the fire time is preserved.
			got.FireTime = r.FireTime
			assert.Equal(t, r, got)
		})
	}
}

func TestAdvanceCustomNeverAdvances(t *testing.T) {
	r := reminder.Reminder{
		ID:             "r1",
		FireTime:       time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
		Repeating:      true,
		RepeatInterval: reminder.RepeatCustom,
	}
	assert.Equal(t, r, Advance(r))
}

func TestAdvanceMonthEndClamping(t *testing.T) {
	tests := []struct {
		name string
		fire time.Time
		want time.Time
	}{
		{
			"jan 31 clamps to feb 28",
			time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 28, 8, 0, 0, 0, time.UTC),
		},
		{
			"jan 31 clamps to feb 29 in a leap year",
			time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			"mar 31 clamps to apr 30",
			time.Date(2025, 3, 31, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC),
		},
		{
			"dec rolls into january of the next year",
			time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reminder.Reminder{
				ID:             "r1",
				FireTime:       tt.fire,
				Repeating:      true,
				RepeatInterval: reminder.RepeatMonthly,
			}
			got := Advance(r)
			assert.Equal(t, tt.want, got.FireTime)
			assert.True(t, got.FireTime.After(tt.fire))
		})
	}
}
