package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"nexum-inventory-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	h := NewHub(nil, nopLogger{})
	go h.Run()
	return h
}

func clientCount(h *Hub) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

func TestBroadcastDeliversToConnectedClient(t *testing.T) {
	h := newTestHub()
	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 8)}

	h.register <- client
	require.Eventually(t, func() bool { return clientCount(h) == 1 },
		time.Second, 5*time.Millisecond)

	h.Broadcast(dto.StockAlertNotification{
		Code:    "PRD-001",
		Status:  "CRITICO",
		Message: "Stock coverage below threshold",
	})

	select {
	case payload := <-client.Send:
		var envelope struct {
			Type string                     `json:"type"`
			Data dto.StockAlertNotification `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &envelope))
		assert.Equal(t, "stock_alert", envelope.Type)
		assert.Equal(t, "PRD-001", envelope.Data.Code)
	case <-time.After(time.Second):
		t.Fatal("alert was not delivered to the connected client")
	}
}

func TestBroadcastDropsSlowConsumer(t *testing.T) {
	h := newTestHub()
	// Unbuffered Send with no reader: the first broadcast cannot be queued.
	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte)}

	h.register <- client
	require.Eventually(t, func() bool { return clientCount(h) == 1 },
		time.Second, 5*time.Millisecond)

	h.Broadcast(dto.StockAlertNotification{Code: "PRD-001", Status: "CRITICO"})

	require.Eventually(t, func() bool { return clientCount(h) == 0 },
		time.Second, 5*time.Millisecond)

	// Send is closed exactly once, by the unregister loop.
	_, open := <-client.Send
	assert.False(t, open, "expected Send to be closed after the drop")

	// A later broadcast must not touch the dropped client.
	h.Broadcast(dto.StockAlertNotification{Code: "PRD-002", Status: "CRITICO"})
	assert.Equal(t, 0, clientCount(h))
}

func TestBroadcastDropsAllSlowConsumersInOneFanOut(t *testing.T) {
	h := newTestHub()
	first := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte)}
	second := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte)}

	h.register <- first
	h.register <- second
	require.Eventually(t, func() bool { return clientCount(h) == 2 },
		time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		h.Broadcast(dto.StockAlertNotification{Code: "PRD-001", Status: "CRITICO"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast stalled while dropping slow consumers")
	}

	require.Eventually(t, func() bool { return clientCount(h) == 0 },
		time.Second, 5*time.Millisecond)
}
