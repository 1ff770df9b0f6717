package settings

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Settings are per-user notification preference flags. Users without a row
// get the defaults: everything enabled.
type Settings struct {
	UserID uint64 `gorm:"primaryKey"`

	NotificationsEnabled         bool `gorm:"not null;default:true"`
	ReminderNotificationsEnabled bool `gorm:"not null;default:true"`

	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

type Service struct {
	DB *gorm.DB
}

func (s *Service) Get(ctx context.Context, userID uint64) (Settings, error) {
	var row Settings
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Settings{
			UserID:                       userID,
			NotificationsEnabled:         true,
			ReminderNotificationsEnabled: true,
		}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return row, nil
}

// ReminderNotificationsEnabled reports whether reminder delivery is on for
// the user. It satisfies the lifecycle engine's Prefs contract.
func (s *Service) ReminderNotificationsEnabled(ctx context.Context, userID uint64) (bool, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return prefs.ReminderNotificationsEnabled, nil
}

// Update persists the flags. Disabling notifications as a whole also forces
// reminder notifications off.
func (s *Service) Update(ctx context.Context, userID uint64, notifications, reminderNotifications bool) (Settings, error) {
	if !notifications {
		reminderNotifications = false
	}

	row := Settings{
		UserID:                       userID,
		NotificationsEnabled:         notifications,
		ReminderNotificationsEnabled: reminderNotifications,
		UpdatedAt:                    time.Now(),
	}
	if err := s.DB.WithContext(ctx).Save(&row).Error; err != nil {
		return Settings{}, err
	}
	return row, nil
}
