package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type PreferenceServiceInterface interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*db_models.TravelPreference, error)
	UpsertPreferences(ctx context.Context, userID uuid.UUID, request request_models.UpsertPreferencesRequest) (*db_models.TravelPreference, error)
}

type PreferenceService struct {
	prefRepo repositories.PreferenceRepository
}

func NewPreferenceService(prefRepo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetPreferences returns nil when the user has never saved preferences.
func (s *PreferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*db_models.TravelPreference, error) {
	prefs, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prefs, nil
}

func (s *PreferenceService) UpsertPreferences(ctx context.Context, userID uuid.UUID, request request_models.UpsertPreferencesRequest) (*db_models.TravelPreference, error) {
	pref := &db_models.TravelPreference{
		UserID:          userID,
		TravelStyle:     request.TravelStyle,
		Accommodation:   request.Accommodation,
		Activities:      pq.StringArray(request.Activities),
		Transportation:  request.Transportation,
		Budget:          request.Budget,
		FoodPreferences: request.FoodPreferences,
	}
	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pref, nil
}
