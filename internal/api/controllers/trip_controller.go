package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// PlanTrip godoc
// @Summary Generate a personalized trip plan with matched guides
// @Description Works anonymously; stored preferences are used when a valid token is sent
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Trip planning payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var userID *uuid.UUID
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	plan, err := t.tripService.PlanTrip(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "")
}

// SaveTrip godoc
// @Summary Save a trip for the caller
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.SaveTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip saved")
}

// ListTrips godoc
// @Summary List the caller's saved trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}
