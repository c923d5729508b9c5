package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{
		guideService: guideService,
	}
}

// ListGuides godoc
// @Summary List all guides
// @Tags Guides
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /guides [get]
func (g *GuideController) ListGuides(c *gin.Context) {
	guides, err := g.guideService.ListGuides(c.Request.Context(), "")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guides, "")
}

// ListGuidesByLocation godoc
// @Summary List guides serving a location
// @Tags Guides
// @Produce json
// @Param location path string true "Location"
// @Success 200 {object} utils.APIResponse
// @Router /guides/location/{location} [get]
func (g *GuideController) ListGuidesByLocation(c *gin.Context) {
	location := c.Param("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	guides, err := g.guideService.ListGuides(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guides, "")
}

// GetGuide godoc
// @Summary Get a guide by id
// @Tags Guides
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /guides/{id} [get]
func (g *GuideController) GetGuide(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid guide id")
		return
	}

	guide, err := g.guideService.GetGuide(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "")
}

// RegisterGuide godoc
// @Summary Register the caller as a guide
// @Tags Guides
// @Accept json
// @Produce json
// @Param request body request_models.RegisterGuideRequest true "Guide profile payload"
// @Success 201 {object} utils.APIResponse
// @Router /guides/register [post]
func (g *GuideController) RegisterGuide(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.RegisterGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	guide, err := g.guideService.RegisterGuide(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, guide, "Guide profile created")
}

// TranslateGuide godoc
// @Summary Translate a guide's bio and specialties
// @Tags Guides
// @Produce json
// @Param id path string true "Guide ID"
// @Param lang path string true "Target language code"
// @Success 200 {object} utils.APIResponse
// @Router /guides/{id}/translate/{lang} [get]
func (g *GuideController) TranslateGuide(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid guide id")
		return
	}

	lang := c.Param("lang")
	if lang == "" {
		utils.RespondError(c, http.StatusBadRequest, "Target language is required")
		return
	}

	translation, err := g.guideService.TranslateGuide(c.Request.Context(), id, lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, translation, "")
}
