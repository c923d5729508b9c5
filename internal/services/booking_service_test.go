package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/pkg/utils"
)

func TestCreateBooking_DefaultsToPending(t *testing.T) {
	guide := newGuide("4.0", "Food")
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, &fakeGuideRepo{byID: map[uuid.UUID]*db_models.Guide{guide.ID: guide}})

	booking, err := svc.CreateBooking(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		GuideID:   guide.ID.String(),
		TripID:    uuid.New().String(),
		StartDate: "2024-07-01",
		EndDate:   "2024-07-05",
		Notes:     "vegetarian",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingPending, booking.Status)
	assert.Equal(t, "vegetarian", booking.Notes)
	assert.Len(t, repo.inserted, 1)
}

func TestCreateBooking_UnknownGuide(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeGuideRepo{byID: map[uuid.UUID]*db_models.Guide{}})

	_, err := svc.CreateBooking(context.Background(), uuid.New(), request_models.CreateBookingRequest{
		GuideID:   uuid.New().String(),
		TripID:    uuid.New().String(),
		StartDate: "2024-07-01",
		EndDate:   "2024-07-05",
	})
	assert.ErrorIs(t, err, utils.ErrGuideNotFound)
}

func TestListGuideBookings_NonGuideForbidden(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeGuideRepo{byUserID: map[uuid.UUID]*db_models.Guide{}})

	_, err := svc.ListGuideBookings(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrNotAGuide)
}

func TestUpdateStatus_RejectsUnrecognizedStatus(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeGuideRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "maybe")
	assert.ErrorIs(t, err, utils.ErrInvalidBookingStatus)
}

func TestUpdateStatus_OnlyPartiesMayChange(t *testing.T) {
	traveler := uuid.New()
	guideUser := uuid.New()
	booking := &db_models.Booking{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    traveler,
		Status:    db_models.BookingPending,
		Guide:     db_models.Guide{UserID: guideUser},
	}
	repo := &fakeBookingRepo{byID: map[uuid.UUID]*db_models.Booking{booking.ID: booking}}
	svc := NewBookingService(repo, &fakeGuideRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), booking.ID, "accepted")
	assert.ErrorIs(t, err, utils.ErrBookingForbidden)

	updated, err := svc.UpdateStatus(context.Background(), guideUser, booking.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingAccepted, updated.Status)

	updated, err = svc.UpdateStatus(context.Background(), traveler, booking.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingCompleted, updated.Status)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{byID: map[uuid.UUID]*db_models.Booking{}}, &fakeGuideRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "accepted")
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}
