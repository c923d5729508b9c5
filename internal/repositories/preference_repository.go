package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.TravelPreference, error)
	Upsert(ctx context.Context, pref *db_models.TravelPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.TravelPreference, error) {
	var pref db_models.TravelPreference
	err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *db_models.TravelPreference) error {
	existing, err := r.FindByUserID(ctx, pref.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(pref).Error
	}

	pref.ID = existing.ID
	pref.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Model(existing).Select(
		"travel_style", "accommodation", "activities", "transportation", "budget", "food_preferences",
	).Updates(pref).Error
}
