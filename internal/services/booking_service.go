package services

import (
	"context"

	"github.com/google/uuid"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (*db_models.Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error)
	ListGuideBookings(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error)
	UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status string) (*db_models.Booking, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	guideRepo   repositories.GuideRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, guideRepo repositories.GuideRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		guideRepo:   guideRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (*db_models.Booking, error) {
	guideID, err := uuid.Parse(request.GuideID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripID, err := uuid.Parse(request.TripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	guide, err := s.guideRepo.FindByID(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	booking := &db_models.Booking{
		UserID:    userID,
		GuideID:   guideID,
		TripID:    tripID,
		StartDate: start,
		EndDate:   end,
		Status:    db_models.BookingPending,
		Notes:     request.Notes,
	}
	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error) {
	bookings, err := s.bookingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// ListGuideBookings resolves the caller's guide profile first; non-guides
// get ErrNotAGuide.
func (s *BookingService) ListGuideBookings(ctx context.Context, userID uuid.UUID) ([]*db_models.Booking, error) {
	guide, err := s.guideRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrNotAGuide
	}

	bookings, err := s.bookingRepo.ListByGuideID(ctx, guide.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// UpdateStatus allows only the booking's traveler or the booked guide's own
// user to change the status, and only to a recognized value.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status string) (*db_models.Booking, error) {
	parsed, err := db_models.ParseBookingStatus(status)
	if err != nil {
		return nil, utils.ErrInvalidBookingStatus
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.UserID != userID && booking.Guide.UserID != userID {
		return nil, utils.ErrBookingForbidden
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, parsed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}
