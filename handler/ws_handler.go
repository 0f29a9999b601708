package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/atmaprakash0998/rental-app-backend/middleware"
	"github.com/atmaprakash0998/rental-app-backend/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WsHandler upgrades owner connections and parks them on the hub for
// availability pushes.
type WsHandler struct {
	hub *realtime.Hub
}

func NewWsHandler(hub *realtime.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// OwnerSocket holds the connection open until the owner disconnects.
// Inbound frames are drained and dropped; the socket is push-only.
// GET /api/v1/ws/owner
func (h *WsHandler) OwnerSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logrus.WithError(err).Warn("websocket upgrade failed")
			return
		}
		ownerID := callerID.String()
		h.hub.RegisterOwner(ownerID, conn)
		defer h.hub.UnregisterOwner(ownerID)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
