package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans lot events out to connected operator dashboards.
type Hub struct {
	mu         sync.RWMutex
	byOperator map[string]*wsConn
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{byOperator: make(map[string]*wsConn), logger: logger}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// RegisterOperator registers a dashboard connection, replacing any previous
// connection held by the same operator.
func (h *Hub) RegisterOperator(operatorID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byOperator[operatorID]; ok {
		old.conn.Close()
	}
	h.byOperator[operatorID] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterOperator(operatorID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byOperator[operatorID]; ok {
		c.conn.Close()
		delete(h.byOperator, operatorID)
	}
}

// Notify sends a typed event payload to one operator if connected.
func (h *Hub) Notify(operatorID string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byOperator[operatorID]
	h.mu.RUnlock()
	if !ok {
		h.logger.Debug("operator not connected; drop event",
			zap.String("operator_id", operatorID), zap.String("event", event))
		return nil
	}
	return wc.write(h.logger, operatorID, event, payload)
}

// Broadcast sends a typed event payload to every connected operator.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.byOperator))
	for id, wc := range h.byOperator {
		conns[id] = wc
	}
	h.mu.RUnlock()
	for id, wc := range conns {
		_ = wc.write(h.logger, id, event, payload)
	}
}

func (wc *wsConn) write(logger *zap.Logger, operatorID, event string, payload any) error {
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		logger.Warn("ws write failed",
			zap.String("operator_id", operatorID), zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}

// Event payloads

// EntryPayload is broadcast when a vehicle is admitted.
type EntryPayload struct {
	EntryID    string `json:"entry_id"`
	TicketCode string `json:"ticket_code"`
	LocationID string `json:"location_id"`
}

// MovementPayload is broadcast when a movement assignment completes.
type MovementPayload struct {
	EntryID        string `json:"entry_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
}

// AssignmentPayload is broadcast when key custody opens.
type AssignmentPayload struct {
	AssignmentID string `json:"assignment_id"`
	EntryID      string `json:"entry_id"`
	Kind         string `json:"kind"`
}

// ExitPayload is broadcast when a lifecycle closes.
type ExitPayload struct {
	EntryID        string `json:"entry_id"`
	FinalCostCents int64  `json:"final_cost_cents"`
}

// StaleAssignmentPayload is broadcast by the monitor for keys held too long.
type StaleAssignmentPayload struct {
	AssignmentID string `json:"assignment_id"`
	EntryID      string `json:"entry_id"`
	StartedAt    string `json:"started_at"`
}
