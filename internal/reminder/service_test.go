package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Save validates its input before touching the database, so the rejection
// paths are exercised against a service with no connection at all.
func TestSaveRejectsInvalidInput(t *testing.T) {
	svc := &Service{}
	fireAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	valid := SaveInput{
		TaskID:   "t1",
		Title:    "Water plants",
		FireTime: fireAt,
	}

	cases := []struct {
		name   string
		mutate func(*SaveInput)
	}{
		{"blank title", func(in *SaveInput) { in.Title = "" }},
		{"whitespace title", func(in *SaveInput) { in.Title = "   " }},
		{"no task", func(in *SaveInput) { in.TaskID = "" }},
		{"zero fire time", func(in *SaveInput) { in.FireTime = time.Time{} }},
		{"repeating without interval", func(in *SaveInput) {
			in.Repeating = true
			in.RepeatInterval = ""
		}},
		{"repeating with unknown interval", func(in *SaveInput) {
			in.Repeating = true
			in.RepeatInterval = "fortnightly"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			_, err := svc.Save(context.Background(), 1, in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
