package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// alertChannel is the Redis channel carrying alerts across instances.
const alertChannel = "stock_alert_events"

type Hub struct {
	// UserID -> connected clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out; nil in single-node mode
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes a stock alert to every connected client and relays it to
// the other instances through Redis. Implements service.AlertDelivery.
func (h *Hub) Broadcast(notification dto.StockAlertNotification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "stock_alert",
		"data": notification,
	})

	h.sendToLocalClients(data)

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), alertChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay alert to Redis", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) sendToLocalClients(data []byte) {
	// Slow consumers are collected under the read lock and handed to the
	// unregister loop afterwards; Run owns the channel close, so the drop
	// path never closes Send itself and never blocks while holding the lock.
	var slow []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				slow = append(slow, client)
			}
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.unregister <- client
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, alertChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		// Relayed payloads are already serialized envelopes.
		if !json.Valid([]byte(msg.Payload)) {
			log.Printf("Redis alert parse error: invalid payload")
			continue
		}
		h.sendToLocalClients([]byte(msg.Payload))
	}
}
