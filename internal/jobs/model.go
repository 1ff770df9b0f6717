package jobs

import "time"

const TypeReminderFire = "REMINDER_FIRE"

// Job is a row in the deferred job table. Key is the unique-work name
// ("reminder_<id>"); scheduling with the same key replaces any pending job.
// Tag carries the owning task id for cancel-all-tagged cascades.
type Job struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"index;not null"`

	Key string `gorm:"index;type:text;not null"`
	Tag string `gorm:"index;type:text;not null;default:''"`

	Type    string `gorm:"type:text;not null"` // REMINDER_FIRE
	Payload []byte `gorm:"type:jsonb;not null;default:'{}'::jsonb"`

	RunAt  time.Time `gorm:"index;not null"`
	Status string    `gorm:"index;not null;default:'PENDING'"` // PENDING/RUNNING/DONE/FAILED/CANCELLED

	Attempts    int `gorm:"not null;default:0"`
	MaxAttempts int `gorm:"not null;default:8"`

	LockedBy *string    `gorm:"type:text"`
	LockedAt *time.Time `gorm:"type:timestamptz"`

	LastError *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

// FirePayload is the jsonb body of a REMINDER_FIRE job. Fire handling always
// re-fetches fresh state; the payload carries identities only.
type FirePayload struct {
	ReminderID string `json:"reminder_id"`
	TaskID     string `json:"task_id"`
}
