package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
)

func addSubscriber(h *Hub, accountID int64, buffer int) *Client {
	client := &Client{
		hub:       h,
		send:      make(chan []byte, buffer),
		accountID: accountID,
		logger:    zerolog.Nop(),
	}
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	return client
}

func TestMarshalSnapshotNilEvents(t *testing.T) {
	data, err := MarshalSnapshot(nil)
	require.NoError(t, err)

	var snapshot EventSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Equal(t, "events", snapshot.Type)
	require.NotNil(t, snapshot.Events)
	require.Empty(t, snapshot.Events)
}

func TestBroadcastDropsSlowSubscriber(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	fast := addSubscriber(hub, 1, 4)
	slow := addSubscriber(hub, 2, 1)
	// Fill the slow subscriber's buffer so the next snapshot cannot be queued
	slow.send <- []byte("stale")

	events := []*models.Event{{ID: 1, Title: "Tech Talk"}}

	done := make(chan struct{})
	go func() {
		hub.BroadcastSnapshot(events)
		hub.BroadcastSnapshot(events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}

	// The responsive subscriber got both snapshots
	for i := 0; i < 2; i++ {
		select {
		case <-fast.send:
		case <-time.After(time.Second):
			t.Fatalf("fast subscriber missing snapshot %d", i+1)
		}
	}

	// The slow subscriber was dropped and its channel closed
	require.Equal(t, 1, hub.GetClientsCount())
	<-slow.send // drain the stale frame
	_, open := <-slow.send
	require.False(t, open)
}
