package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	exitspkg "github.com/maag070208/AXZY-PARK-API/exits"
)

type ExitHandler struct {
	service exitspkg.Service
}

func NewExitHandler(svc exitspkg.Service) *ExitHandler {
	return &ExitHandler{service: svc}
}

type createExitPayload struct {
	EntryID    string `json:"entry_id" binding:"required"`
	OperatorID string `json:"operator_id" binding:"required"`
	Notes      string `json:"notes"`
}

func (h *ExitHandler) CreateExit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createExitPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		eid, err := uuid.Parse(p.EntryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry_id"})
			return
		}
		oid, err := uuid.Parse(p.OperatorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator_id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.Close(ctx, exitspkg.CloseRequest{
			EntryID:    eid,
			OperatorID: oid,
			Notes:      p.Notes,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"exit": created})
	}
}

func (h *ExitHandler) ListExits() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListExits(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"exits": list})
	}
}

func (h *ExitHandler) ExitForEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		eid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		x, err := h.service.ExitForEntry(c.Request.Context(), eid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"exit": x})
	}
}
