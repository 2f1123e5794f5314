package websocket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
)

// SnapshotProvider supplies the full current event set for the initial frame
// sent to a new subscriber.
type SnapshotProvider interface {
	ListAll(ctx context.Context) ([]*models.Event, error)
}

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	provider SnapshotProvider
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(
	hub *Hub,
	provider SnapshotProvider,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		hub:      hub,
		provider: provider,
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to the live event feed
// @Description Upgrades HTTP connection to a WebSocket that receives the full event set on connect and after every event creation
// @Tags events, websocket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} gin.H "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /events/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Get account ID from context (set by auth middleware)
	accountIDInterface, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Account ID not found in context",
		})
		return
	}

	// Convert to int64
	accountID, ok := accountIDInterface.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid account ID format",
		})
		return
	}

	// Fetch the current event set before upgrading so a storage failure can
	// still be reported over HTTP
	events, err := h.provider.ListAll(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("accountID", accountID).
			Msg("Failed to load events for initial snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load events",
		})
		return
	}

	initial, err := MarshalSnapshot(events)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("accountID", accountID).
			Msg("Failed to marshal initial snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to prepare events",
		})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("accountID", accountID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	// Create a new client and register it with the hub
	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		accountID: accountID,
		logger:    h.logger,
	}
	client.send <- initial
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Int64("accountID", accountID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("Event feed subscription established")
}
