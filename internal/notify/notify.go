// Package notify records delivered notifications. Delivery is keyed: a
// second presentation under the same key replaces the earlier row, which is
// what deduplicates the sweep firing alongside a per-reminder job.
package notify

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow/internal/engine"
)

type Notification struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"index;not null"`

	Key        string `gorm:"type:text;not null"` // unique per user
	TaskID     string `gorm:"index;type:text;not null"`
	ReminderID string `gorm:"type:text;not null"`

	Title string `gorm:"type:text;not null"`
	Body  string `gorm:"type:text;not null;default:''"`

	DeliveredAt time.Time `gorm:"index;not null;default:now()"`
}

type Service struct {
	DB *gorm.DB
}

var _ engine.Presenter = (*Service)(nil)

func (s *Service) Present(ctx context.Context, n engine.Notification) error {
	row := Notification{
		UserID:      n.UserID,
		Key:         n.Key,
		TaskID:      n.TaskID,
		ReminderID:  n.ReminderID,
		Title:       n.Title,
		Body:        n.Body,
		DeliveredAt: time.Now(),
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"task_id", "reminder_id", "title", "body", "delivered_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return err
	}

	log.Printf("[NOTIFY] user=%d key=%s title=%q\n", n.UserID, n.Key, n.Title)
	return nil
}

// List returns the user's notifications, most recent first.
func (s *Service) List(ctx context.Context, userID uint64, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []Notification
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("delivered_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
