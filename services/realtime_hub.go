package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	// Serializes writes: gorilla/websocket allows only one concurrent
	// writer per connection, and broadcasts arrive from any number of
	// handler goroutines.
	writeMu sync.Mutex
}

// Write sends one message, holding the per-connection write lock. Every
// write to Conn, including keepalive pings, must go through here.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// Ping sends a keepalive control frame through the same write lock.
func (c *WSClient) Ping() error {
	return c.Write(websocket.PingMessage, nil)
}

// RealtimeHub fans out per-user events (water ledger updates, new sessions)
// to connected dashboard sockets.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}

// BroadcastWaterUpdate pushes the new daily total so open dashboards can
// move the bottle without polling.
func (h *RealtimeHub) BroadcastWaterUpdate(userID uint, totalOz float64) {
	h.Broadcast(userID, map[string]any{
		"kind":     "water.updated",
		"water_oz": totalOz,
	})
}

// BroadcastSessionCreated announces a freshly calculated workout session.
func (h *RealtimeHub) BroadcastSessionCreated(userID uint, payload any) {
	h.Broadcast(userID, map[string]any{
		"kind":    "session.created",
		"session": payload,
	})
}
