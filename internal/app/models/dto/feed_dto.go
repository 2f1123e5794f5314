package dto

import "github.com/gradchat/gradchat/internal/app/models"

// CreatePostRequest represents a new post. Every field is required.
type CreatePostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
	Image string `json:"image" binding:"required"`
}

// CreateEventRequest represents a new event. Every field is required.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

// PostListResponse wraps an owner-scoped post listing
type PostListResponse struct {
	Posts []*models.Post `json:"posts"`
}

// EventListResponse wraps an owner-scoped event listing
type EventListResponse struct {
	Events []*models.Event `json:"events"`
}
