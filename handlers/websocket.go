package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"robot-server/ws"
)

// WSHandler upgrades dashboard clients and registers them for live
// telemetry broadcasts. Clients only listen; inbound frames are drained to
// keep the connection alive.
type WSHandler struct {
	mgr *ws.Manager
}

func NewWSHandler(mgr *ws.Manager) *WSHandler {
	return &WSHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleDashboardWS GET /ws
func (h *WSHandler) HandleDashboardWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := uuid.New().String()
	h.mgr.Register(clientID, conn)
	log.Printf("dashboard client connected: %s", clientID)

	defer func() {
		h.mgr.Unregister(clientID)
		log.Printf("dashboard client disconnected: %s", clientID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s closed connection", clientID)
			} else {
				log.Printf("read error from %s: %v", clientID, err)
			}
			return
		}
	}
}

// GetConnectedClients GET /api/clients/connected
func (h *WSHandler) GetConnectedClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.mgr.Count()})
}
