package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	DB *gorm.DB
}

type SaveInput struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Category    Category
	DueDate     *time.Time
	Tags        []string
}

// Save creates the task when ID is blank (minting a fresh uuid and both
// timestamps) and updates it otherwise, refreshing ModifiedAt. Completion is
// not touched here; it has its own toggle path.
func (s *Service) Save(ctx context.Context, userID uint64, in SaveInput) (Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return Task{}, ErrInvalidInput
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.Category == "" {
		in.Category = CategoryPersonal
	}
	if !in.Priority.Valid() || !in.Category.Valid() {
		return Task{}, ErrInvalidInput
	}

	now := time.Now()
	tags := pq.StringArray(NormalizeTags(in.Tags))

	if in.ID == "" {
		t := Task{
			ID:          uuid.NewString(),
			UserID:      userID,
			Title:       in.Title,
			Description: in.Description,
			Priority:    in.Priority,
			Category:    in.Category,
			DueDate:     in.DueDate,
			Tags:        tags,
			CreatedAt:   now,
			ModifiedAt:  now,
		}
		if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
			return Task{}, err
		}
		return t, nil
	}

	var t Task
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", in.ID, userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Task{}, ErrNotFound
	}
	if err != nil {
		return Task{}, err
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Priority = in.Priority
	t.Category = in.Category
	t.DueDate = in.DueDate
	t.Tags = tags
	t.ModifiedAt = now

	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return Task{}, err
	}
	return t, nil
}

// Get is the user-scoped lookup for handlers. Missing rows map to ErrNotFound.
func (s *Service) Get(ctx context.Context, userID uint64, id string) (Task, error) {
	var t Task
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Task{}, ErrNotFound
	}
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

type ListFilter struct {
	Completed *bool
	Priority  Priority
	Category  Category
	Tag       string
	Query     string
	Due       string // "", "upcoming", "overdue"
}

func (s *Service) List(ctx context.Context, userID uint64, f ListFilter) ([]Task, error) {
	q := s.DB.WithContext(ctx).Model(&Task{}).Where("user_id = ?", userID)

	if f.Completed != nil {
		q = q.Where("completed = ?", *f.Completed)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Tag != "" {
		q = q.Where("? = any(tags)", strings.ToLower(f.Tag))
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	switch f.Due {
	case "upcoming":
		q = q.Where("due_date is not null AND due_date > now() AND completed = false")
	case "overdue":
		q = q.Where("due_date is not null AND due_date <= now() AND completed = false")
	}

	var rows []Task
	if err := q.Order("modified_at desc").Limit(100).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTask is the unscoped lookup used at fire time; returns nil, nil when
// the task no longer exists.
func (s *Service) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) SetCompletion(ctx context.Context, id string, completed bool) error {
	return s.DB.WithContext(ctx).Model(&Task{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":   completed,
			"modified_at": time.Now(),
		}).Error
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&Task{}).Error
}
