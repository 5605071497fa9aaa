package repository

import (
	"context"
	"errors"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ByTelegramID returns the profile registered for a Telegram user id,
// or nil when no profile exists. A missing profile is not an error.
func (r *ProfileRepository) ByTelegramID(ctx context.Context, telegramID string) (*models.TechnicianProfile, error) {
	var profile models.TechnicianProfile

	err := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
