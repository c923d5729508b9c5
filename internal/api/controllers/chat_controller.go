package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a message to the travel assistant
// @Description Conversation history is kept per user, capped at the last ten turns
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Router /chat [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := ch.chatService.HandleMessage(c.Request.Context(), userID.String(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "")
}
