// Package ws pushes live scan verdicts to warehouse consoles over
// WebSocket, so a second screen at the packing station can mirror the
// scanner feed without polling.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/session"

	gws "github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// ScanEvent is the payload broadcast after every scan.
type ScanEvent struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	SKU     string `json:"sku,omitempty"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// client wraps a connection with a mutex serializing writes.
type client struct {
	conn *gws.Conn
	mu   sync.Mutex
}

// Hub maintains connected consoles and broadcasts scan events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *slog.Logger

	upgrader gws.Upgrader
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.With("component", "scan_feed"),
		upgrader: gws.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("console connected", "total", count)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	_ = c.conn.Close()
}

// BroadcastScan sends a scan verdict to every connected console. Consoles
// whose write fails are dropped.
func (h *Hub) BroadcastScan(result session.ScanResult) {
	event := ScanEvent{
		Success: result.Success(),
		Kind:    result.Kind.String(),
		SKU:     result.SKU,
		Message: result.Message,
	}
	if !result.Success() {
		event.Reason = result.Reason.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal scan event", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err = c.conn.WriteMessage(gws.TextMessage, data)
		c.mu.Unlock()

		if err != nil {
			h.unregister(c)
		}
	}
}

// Handle upgrades the request and keeps the connection alive with pings.
// The read loop only consumes control frames; consoles never send data.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn}
	h.register(c)

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for range ticker.C {
			c.mu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := conn.WriteMessage(gws.PingMessage, nil)
			c.mu.Unlock()

			if err != nil {
				h.unregister(c)
				return
			}
		}
	}()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister(c)
				return
			}
		}
	}()
}
