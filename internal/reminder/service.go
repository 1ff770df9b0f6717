package reminder

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow/internal/task"
)

var ErrNotFound = errors.New("not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	DB *gorm.DB
}

type SaveInput struct {
	ID             string
	TaskID         string
	FireTime       time.Time
	Title          string
	Message        string
	Enabled        bool
	Repeating      bool
	RepeatInterval RepeatInterval
}

// Save creates or updates a reminder. A reminder whose task does not exist
// (or belongs to another user) is rejected with ErrTaskNotFound and never
// persisted.
func (s *Service) Save(ctx context.Context, userID uint64, in SaveInput) (Reminder, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.TaskID == "" || in.FireTime.IsZero() {
		return Reminder{}, ErrInvalidInput
	}
	if in.Repeating && !in.RepeatInterval.Valid() {
		return Reminder{}, ErrInvalidInput
	}
	if !in.Repeating {
		in.RepeatInterval = ""
	}

	var owner task.Task
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", in.TaskID, userID).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Reminder{}, ErrTaskNotFound
	}
	if err != nil {
		return Reminder{}, err
	}

	if in.ID == "" {
		r := Reminder{
			ID:             uuid.NewString(),
			UserID:         userID,
			TaskID:         in.TaskID,
			FireTime:       in.FireTime,
			Title:          in.Title,
			Message:        in.Message,
			Enabled:        in.Enabled,
			Repeating:      in.Repeating,
			RepeatInterval: in.RepeatInterval,
			CreatedAt:      time.Now(),
		}
		if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
			return Reminder{}, err
		}
		return r, nil
	}

	var r Reminder
	err = s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", in.ID, userID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Reminder{}, ErrNotFound
	}
	if err != nil {
		return Reminder{}, err
	}

	r.TaskID = in.TaskID
	r.FireTime = in.FireTime
	r.Title = in.Title
	r.Message = in.Message
	r.Enabled = in.Enabled
	r.Repeating = in.Repeating
	r.RepeatInterval = in.RepeatInterval

	if err := s.DB.WithContext(ctx).Save(&r).Error; err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, userID uint64, id string) (Reminder, error) {
	var r Reminder
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Reminder{}, ErrNotFound
	}
	if err != nil {
		return Reminder{}, err
	}
	return r, nil
}

// List returns the user's reminders, optionally narrowed to a fire-time
// window: "24h" and "week" mirror the upcoming views of the task screens.
func (s *Service) List(ctx context.Context, userID uint64, window string) ([]Reminder, error) {
	q := s.DB.WithContext(ctx).Model(&Reminder{}).Where("user_id = ?", userID)

	now := time.Now()
	switch window {
	case "24h":
		q = q.Where("fire_time > ? AND fire_time <= ?", now, now.AddDate(0, 0, 1))
	case "week":
		q = q.Where("fire_time > ? AND fire_time <= ?", now, now.AddDate(0, 0, 7))
	}

	var rows []Reminder
	if err := q.Order("fire_time asc").Limit(200).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) ListByTask(ctx context.Context, userID uint64, taskID string) ([]Reminder, error) {
	var rows []Reminder
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Order("fire_time asc").
		Find(&rows).Error
	return rows, err
}

// UpdateStatus flips the enabled flag and returns the fresh row so the
// caller can re-apply the scheduling policy.
func (s *Service) UpdateStatus(ctx context.Context, userID uint64, id string, enabled bool) (Reminder, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return Reminder{}, err
	}
	if r.Enabled == enabled {
		return r, nil
	}

	r.Enabled = enabled
	if err := s.DB.WithContext(ctx).Save(&r).Error; err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, userID uint64, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetReminder is the unscoped lookup used at fire time; returns nil, nil
// when the reminder no longer exists.
func (s *Service) GetReminder(ctx context.Context, id string) (*Reminder, error) {
	var r Reminder
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveReminder persists an engine-advanced reminder under its existing
// identity.
func (s *Service) SaveReminder(ctx context.Context, r Reminder) error {
	return s.DB.WithContext(ctx).Save(&r).Error
}

func (s *Service) DeleteRemindersForTask(ctx context.Context, taskID string) error {
	return s.DB.WithContext(ctx).Where("task_id = ?", taskID).Delete(&Reminder{}).Error
}

// ListFiredBetween returns enabled reminders whose fire time fell inside
// (from, to], the sweep window.
func (s *Service) ListFiredBetween(ctx context.Context, from, to time.Time) ([]Reminder, error) {
	var rows []Reminder
	err := s.DB.WithContext(ctx).
		Where("enabled = true AND fire_time > ? AND fire_time <= ?", from, to).
		Order("fire_time asc").
		Find(&rows).Error
	return rows, err
}
