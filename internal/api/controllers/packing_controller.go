package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type PackingController struct {
	packingService services.PackingServiceInterface
}

func NewPackingController(packingService services.PackingServiceInterface) *PackingController {
	return &PackingController{
		packingService: packingService,
	}
}

// GenerateList godoc
// @Summary Generate a personalized packing list for a trip
// @Tags Packing
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePackingListRequest true "Packing list payload"
// @Success 201 {object} utils.APIResponse
// @Router /packing-lists/generate [post]
func (p *PackingController) GenerateList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.GeneratePackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := p.packingService.GenerateList(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, list, "Packing list generated")
}

// ListsForTrip godoc
// @Summary List the caller's packing lists for a trip
// @Tags Packing
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{tripId}/packing-lists [get]
func (p *PackingController) ListsForTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	lists, err := p.packingService.ListsForTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lists, "")
}

// UpdateItem godoc
// @Summary Mark a packing item packed or unpacked
// @Tags Packing
// @Accept json
// @Produce json
// @Param id path string true "Packing item ID"
// @Param request body request_models.UpdatePackingItemRequest true "Item payload"
// @Success 200 {object} utils.APIResponse
// @Router /packing-items/{id} [patch]
func (p *PackingController) UpdateItem(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req request_models.UpdatePackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := p.packingService.SetItemPacked(c.Request.Context(), itemID, *req.IsPacked)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item updated")
}
