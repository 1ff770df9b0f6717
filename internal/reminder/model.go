package reminder

import "time"

type RepeatInterval string

const (
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
	RepeatCustom  RepeatInterval = "custom"
)

func (i RepeatInterval) Valid() bool {
	switch i {
	case RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	}
	return false
}

// AutoAdvances reports whether the interval participates in automatic
// repeat advancement. Custom cadence is left to the caller and is a no-op
// for the lifecycle engine.
func (i RepeatInterval) AutoAdvances() bool {
	switch i {
	case RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Reminder is a scheduled notification tied to exactly one task. A reminder
// whose task no longer exists must never be persisted; saves are rejected at
// the service boundary.
type Reminder struct {
	ID     string `gorm:"primaryKey;type:text"`
	UserID uint64 `gorm:"index;not null"`
	TaskID string `gorm:"index;type:text;not null"`

	FireTime time.Time `gorm:"index;not null"`

	Title   string `gorm:"type:text;not null"`
	Message string `gorm:"type:text;not null;default:''"`

	Enabled   bool `gorm:"not null;default:true"`
	Repeating bool `gorm:"not null;default:false"`

	// RepeatInterval is ignored for scheduling when Repeating is false.
	RepeatInterval RepeatInterval `gorm:"type:text;not null;default:''"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}
