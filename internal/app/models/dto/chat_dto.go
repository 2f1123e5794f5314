package dto

import "github.com/gradchat/gradchat/internal/app/models"

// ChatRequest carries the latest user message together with the prior
// conversation turns, oldest first. The server holds no chat state between
// requests.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []models.ChatTurn `json:"history"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}
