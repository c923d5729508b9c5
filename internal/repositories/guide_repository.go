package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

type GuideRepository interface {
	InsertTx(tx *gorm.DB, guide *db_models.Guide) error
	ListAll(ctx context.Context) ([]*db_models.Guide, error)
	ListByLocation(ctx context.Context, location string) ([]*db_models.Guide, error)
	ListByDestinationPattern(ctx context.Context, destination string) ([]*db_models.Guide, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Guide, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Guide, error)
}

type guideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) InsertTx(tx *gorm.DB, guide *db_models.Guide) error {
	return tx.Create(guide).Error
}

func (r *guideRepository) ListAll(ctx context.Context) ([]*db_models.Guide, error) {
	var guides []*db_models.Guide
	err := r.db.WithContext(ctx).Preload("User").Find(&guides).Error
	return guides, err
}

// ListByLocation matches an exact element of the locations array.
func (r *guideRepository) ListByLocation(ctx context.Context, location string) ([]*db_models.Guide, error) {
	var guides []*db_models.Guide
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("locations @> ?", pq.StringArray{location}).
		Find(&guides).Error
	return guides, err
}

// ListByDestinationPattern matches guides whose locations array has an
// element that case-insensitively contains the destination.
func (r *guideRepository) ListByDestinationPattern(ctx context.Context, destination string) ([]*db_models.Guide, error) {
	pattern := "%" + strings.ToLower(destination) + "%"

	var guides []*db_models.Guide
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("EXISTS (SELECT 1 FROM unnest(locations) AS location WHERE LOWER(location) LIKE ?)", pattern).
		Find(&guides).Error
	return guides, err
}

func (r *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Guide, error) {
	var guide db_models.Guide
	err := r.db.WithContext(ctx).Preload("User").First(&guide, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guide, nil
}

func (r *guideRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Guide, error) {
	var guide db_models.Guide
	err := r.db.WithContext(ctx).First(&guide, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guide, nil
}
