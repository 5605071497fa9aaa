package repository

import (
	"context"
	"time"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, ev *models.LocationEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// RecentSince returns all events recorded at or after the cutoff,
// newest first. The descending order matters: the freshness reduction
// takes the first row it sees per device as that device's latest.
func (r *LocationRepository) RecentSince(ctx context.Context, since time.Time) ([]models.LocationEvent, error) {
	var events []models.LocationEvent

	err := r.db.WithContext(ctx).
		Where("timestamp >= ?", since).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
