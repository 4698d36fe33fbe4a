package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/maag070208/AXZY-PARK-API/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// DashboardSocket upgrades to WS and registers an operator dashboard
// connection; lot events are pushed until the client disconnects.
func (h *WSHandler) DashboardSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.Query("operator_id")
		if _, err := uuid.Parse(operatorID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator_id"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.RegisterOperator(operatorID, conn)
		// read loop only to detect disconnects; the dashboard never sends
		// state changes over the socket
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterOperator(operatorID)
				break
			}
		}
	}
}
