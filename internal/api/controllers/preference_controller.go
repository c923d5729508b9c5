package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

// GetPreferences godoc
// @Summary Get the caller's travel preferences
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /preferences [get]
func (p *PreferenceController) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, err := p.preferenceService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "")
}

// UpsertPreferences godoc
// @Summary Create or replace the caller's travel preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.UpsertPreferencesRequest true "Preferences payload"
// @Success 200 {object} utils.APIResponse
// @Router /preferences [post]
func (p *PreferenceController) UpsertPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpsertPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prefs, err := p.preferenceService.UpsertPreferences(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences saved")
}
