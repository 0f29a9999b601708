package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Hub tracks one websocket connection per owner and pushes vehicle events
// to them.
type Hub struct {
	mu      sync.RWMutex
	byOwner map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{byOwner: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize
// writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// RegisterOwner replaces any existing connection for the owner.
func (h *Hub) RegisterOwner(ownerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byOwner[ownerID]; ok {
		old.conn.Close()
	}
	h.byOwner[ownerID] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterOwner(ownerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byOwner[ownerID]; ok {
		c.conn.Close()
		delete(h.byOwner, ownerID)
	}
}

// NotifyOwner sends a typed event payload to the owner if connected.
// Disconnected owners just miss the event.
func (h *Hub) NotifyOwner(ownerID string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byOwner[ownerID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner_id": ownerID,
			"event":    event,
		}).Warn("ws write failed")
		return err
	}
	return nil
}
