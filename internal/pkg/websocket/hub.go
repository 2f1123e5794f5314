package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/metrics"
)

// Hub maintains the set of active subscribers and pushes event snapshots to
// them. The event stream is global: every subscriber receives every snapshot.
type Hub struct {
	// Registered subscribers
	clients map[*Client]bool

	// Channel for outbound snapshots
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// EventSnapshot is the frame pushed to subscribers: the full current event
// set, not a delta. Subscribers replace their local state with it wholesale.
type EventSnapshot struct {
	Type   string          `json:"type"`
	Events []*models.Event `json:"events"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case data := <-h.broadcast:
			h.broadcastData(data)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	metrics.LiveSubscribers.Inc()

	h.logger.Info().
		Int64("accountID", client.accountID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Subscriber registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		metrics.LiveSubscribers.Dec()

		h.logger.Info().
			Int64("accountID", client.accountID).
			Str("addr", client.conn.RemoteAddr().String()).
			Msg("Subscriber unregistered")
	}
}

// broadcastData sends an already-serialized snapshot to every subscriber
func (h *Hub) broadcastData(data []byte) {
	h.mu.Lock()

	for client := range h.clients {
		select {
		case client.send <- data:
			// Snapshot sent successfully
		default:
			// Client's send buffer is full, they might be slow or
			// disconnected. Drop them inline: Run is blocked here, so a
			// send to the unregister channel could never be received.
			delete(h.clients, client)
			close(client.send)
			metrics.LiveSubscribers.Dec()

			h.logger.Info().
				Int64("accountID", client.accountID).
				Msg("Subscriber dropped, send buffer full")
		}
	}

	clientCount := len(h.clients)
	h.mu.Unlock()

	metrics.EventBroadcastsTotal.Inc()

	h.logger.Debug().
		Int("clientCount", clientCount).
		Msg("Event snapshot broadcasted")
}

// BroadcastSnapshot serializes the full event set and queues it for delivery
// to all subscribers.
func (h *Hub) BroadcastSnapshot(events []*models.Event) {
	data, err := MarshalSnapshot(events)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("Failed to marshal event snapshot for broadcast")
		return
	}
	h.broadcast <- data
}

// MarshalSnapshot serializes an event set into the wire frame
func MarshalSnapshot(events []*models.Event) ([]byte, error) {
	if events == nil {
		events = []*models.Event{}
	}
	return json.Marshal(&EventSnapshot{Type: "events", Events: events})
}

// GetClientsCount returns the number of connected subscribers
func (h *Hub) GetClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
