package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*db_models.Trip, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
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

func (r *tripRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*db_models.Trip, error) {
	var trips []*db_models.Trip
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&trips).Error
	return trips, err
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}
