package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"solotrip/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error)
	FindByUserCityDays(ctx context.Context, userID, city string, days int) (*db_models.Trip, error)
	// DeleteByUser reports whether a trip owned by userID was removed.
	DeleteByUser(ctx context.Context, userID, id string) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	trips := make([]db_models.Trip, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByUserCityDays(ctx context.Context, userID, city string, days int) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND city = ? AND days = ?", userID, city, days).
		Order("created_at DESC").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteByUser(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
