package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/reminder"
	"taskflow/internal/task"
)

func TestDecideTable(t *testing.T) {
	enabled := &reminder.Reminder{
		ID:      "r1",
		TaskID:  "t1",
		Title:   "Stand-up",
		Message: "Join the call",
		Enabled: true,
	}
	disabled := &reminder.Reminder{ID: "r1", TaskID: "t1", Enabled: false}
	openTask := &task.Task{ID: "t1", Title: "Morning meeting"}
	doneTask := &task.Task{ID: "t1", Title: "Morning meeting", Completed: true}

	tests := []struct {
		name string
		r    *reminder.Reminder
		t    *task.Task
		want Outcome
	}{
		{"missing reminder suppresses", nil, openTask, Suppress},
		{"disabled reminder suppresses", disabled, openTask, Suppress},
		{"missing task suppresses", enabled, nil, Suppress},
		{"completed task suppresses", enabled, doneTask, Suppress},
		{"open task presents", enabled, openTask, Present},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.r, tt.t)
			assert.Equal(t, tt.want, d.Outcome)
			if tt.want == Suppress {
				assert.False(t, d.Advance)
			}
		})
	}
}

func TestDecidePresentFields(t *testing.T) {
	r := &reminder.Reminder{
		ID:      "r1",
		TaskID:  "t1",
		Title:   "Stand-up",
		Message: "Join the call",
		Enabled: true,
	}
	tk := &task.Task{ID: "t1", Title: "Morning meeting"}

	d := Decide(r, tk)
	assert.Equal(t, Present, d.Outcome)
	assert.Equal(t, "Morning meeting", d.Title)
	assert.Equal(t, "Join the call", d.Body)
	assert.Equal(t, "t1", d.TargetID)

	t.Run("body falls back to reminder title", func(t *testing.T) {
		r2 := *r
		r2.Message = ""
		assert.Equal(t, "Stand-up", Decide(&r2, tk).Body)
	})
}

func TestDecideAdvanceFlag(t *testing.T) {
	tk := &task.Task{ID: "t1", Title: "Water plants"}

	tests := []struct {
		name      string
		repeating bool
		interval  reminder.RepeatInterval
		want      bool
	}{
		{"daily advances", true, reminder.RepeatDaily, true},
		{"weekly advances", true, reminder.RepeatWeekly, true},
		{"monthly advances", true, reminder.RepeatMonthly, true},
		{"custom never advances", true, reminder.RepeatCustom, false},
		{"non-repeating never advances", false, reminder.RepeatDaily, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &reminder.Reminder{
				ID:             "r1",
				TaskID:         "t1",
				Title:          "Water",
				Enabled:        true,
				Repeating:      tt.repeating,
				RepeatInterval: tt.interval,
			}
			d := Decide(r, tk)
			assert.Equal(t, Present, d.Outcome)
			assert.Equal(t, tt.want, d.Advance)
		})
	}
}
