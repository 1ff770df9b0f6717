package task

import (
	"time"

	"github.com/lib/pq"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Rank orders priorities LOW < MEDIUM < HIGH for sorting and comparison.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	}
	return -1
}

func (p Priority) Valid() bool { return p.Rank() >= 0 }

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryOther    Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryShopping, CategoryHealth, CategoryFinance, CategoryOther:
		return true
	}
	return false
}

// Task is a user-defined unit of work. modifiedAt >= createdAt always holds;
// both are owned by the service, never by callers.
type Task struct {
	ID     string `gorm:"primaryKey;type:text"`
	UserID uint64 `gorm:"index;not null"`

	Title       string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null;default:''"`

	Completed bool       `gorm:"not null;default:false"`
	Priority  Priority   `gorm:"type:text;not null;default:'MEDIUM'"`
	Category  Category   `gorm:"type:text;not null;default:'personal'"`
	DueDate   *time.Time `gorm:"type:timestamptz"`

	Tags pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	CreatedAt  time.Time `gorm:"not null;default:now()"`
	ModifiedAt time.Time `gorm:"index;not null;default:now()"`
}
