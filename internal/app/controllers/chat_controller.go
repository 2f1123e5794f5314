package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/app/services"
)

// ChatController handles mentor chatbot endpoints
type ChatController struct {
	chatService *services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat relays a chatbot conversation turn
// @Summary Send a chatbot message
// @Description Relays the message and prior turns to the completion API and returns the reply. Upstream failures yield a fixed fallback reply, still with status 200.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Message and conversation history"
// @Success 200 {object} dto.APIResponse{data=dto.ChatResponse} "Assistant reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp := c.chatService.Chat(ctx.Request.Context(), &req)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: resp,
	})
}
