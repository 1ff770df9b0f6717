package engine

import (
	"time"

	"taskflow/internal/reminder"
)

// Advance computes the next occurrence of a repeating reminder. Identity and
// every field other than FireTime are preserved, so the derived job key stays
// stable across occurrences. Custom intervals are returned unchanged; they
// never auto-advance.
func Advance(r reminder.Reminder) reminder.Reminder {
	switch r.RepeatInterval {
	case reminder.RepeatDaily:
		r.FireTime = r.FireTime.AddDate(0, 0, 1)
	case reminder.RepeatWeekly:
		r.FireTime = r.FireTime.AddDate(0, 0, 7)
	case reminder.RepeatMonthly:
		r.FireTime = addMonthClamped(r.FireTime)
	}
	return r
}

// addMonthClamped adds one calendar month, clamping to the last valid day of
// the target month (Jan 31 -> Feb 28, or Feb 29 in leap years). time.AddDate
// normalizes overflow into the following month instead, which would silently
// skip an occurrence.
func addMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	m++
	if m > time.December {
		m = time.January
		y++
	}
	if last := daysIn(y, m); d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(y, m, d, h, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
