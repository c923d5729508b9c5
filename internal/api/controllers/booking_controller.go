package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Book a guide for a trip
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created")
}

// ListUserBookings godoc
// @Summary List the caller's bookings as a traveler
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) ListUserBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := b.bookingService.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "")
}

// ListGuideBookings godoc
// @Summary List bookings addressed to the caller's guide profile
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /guide/bookings [get]
func (b *BookingController) ListGuideBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := b.bookingService.ListGuideBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "")
}

// UpdateStatus godoc
// @Summary Update a booking's status
// @Description Only the booking's traveler or the booked guide may change the status
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request_models.UpdateBookingStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /bookings/{id} [patch]
func (b *BookingController) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookingID, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.UpdateStatus(c.Request.Context(), userID, bookingID, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking updated")
}
