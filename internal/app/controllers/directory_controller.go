package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/app/services"
	"github.com/gradchat/gradchat/internal/middleware"
)

// DirectoryController handles senior directory endpoints
type DirectoryController struct {
	directoryService *services.DirectoryService
	logger           zerolog.Logger
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService, logger zerolog.Logger) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
		logger:           logger,
	}
}

// ListByRole returns seniors filtered by role tag
// @Summary Browse seniors by role
// @Description Returns seniors whose role tag matches the query exactly (case-sensitive); no match yields an empty list
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param role query string true "Role tag, e.g. placement_coordinator"
// @Success 200 {object} dto.APIResponse{data=dto.SeniorListResponse} "Seniors"
// @Failure 400 {object} dto.ErrorResponse "Missing role parameter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /seniors [get]
func (c *DirectoryController) ListByRole(ctx *gin.Context) {
	role := ctx.Query("role")
	if role == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "role query parameter is required").WithField("role")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	seniors, err := c.directoryService.ListByRole(ctx.Request.Context(), role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SeniorListResponse{Seniors: seniors},
	})
}

// GetByID returns one senior profile
// @Summary Get a senior profile
// @Description Re-fetches a single senior profile by owning account ID so detail views show current data
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse{data=models.SeniorProfile} "Senior profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /seniors/{id} [get]
func (c *DirectoryController) GetByID(ctx *gin.Context) {
	accountID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid account ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	senior, err := c.directoryService.GetByID(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: senior,
	})
}
