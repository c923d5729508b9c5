package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error)
	ListByGuideID(ctx context.Context, guideID uuid.UUID) ([]*db_models.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) (*db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Guide").
		Preload("Guide.User").
		Preload("Trip").
		Where("user_id = ?", userID).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByGuideID(ctx context.Context, guideID uuid.UUID) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Trip").
		Where("guide_id = ?", guideID).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).Preload("Guide").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) (*db_models.Booking, error) {
	if err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
