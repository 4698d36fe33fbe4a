package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	custodypkg "github.com/maag070208/AXZY-PARK-API/custody"
	"github.com/maag070208/AXZY-PARK-API/entity"
)

type AssignmentHandler struct {
	service custodypkg.Service
}

func NewAssignmentHandler(svc custodypkg.Service) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

type createAssignmentPayload struct {
	EntryID          string `json:"entry_id" binding:"required"`
	OperatorID       string `json:"operator_id" binding:"required"`
	Kind             string `json:"kind" binding:"required"` // movement | delivery
	TargetLocationID string `json:"target_location_id"`
}

func (h *AssignmentHandler) CreateAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createAssignmentPayload
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
		req := custodypkg.OpenAssignmentRequest{
			EntryID:    eid,
			OperatorID: oid,
			Kind:       entity.AssignmentKind(p.Kind),
		}
		if p.TargetLocationID != "" {
			tid, err := uuid.Parse(p.TargetLocationID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_location_id"})
				return
			}
			req.TargetLocationID = &tid
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.OpenAssignment(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"assignment": created})
	}
}

func (h *AssignmentHandler) FinishAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		completed, err := h.service.CompleteAssignment(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"assignment": completed})
	}
}

func (h *AssignmentHandler) GetAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
			return
		}
		a, err := h.service.GetAssignment(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"assignment": a})
	}
}

func (h *AssignmentHandler) ListAssignments() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListAssignments(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"assignments": list})
	}
}

func (h *AssignmentHandler) ActiveAssignmentForEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		eid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		a, err := h.service.ActiveAssignmentForEntry(c.Request.Context(), eid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"assignment": a})
	}
}

func (h *AssignmentHandler) EntryMovements() gin.HandlerFunc {
	return func(c *gin.Context) {
		eid, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		list, err := h.service.MovementsForEntry(c.Request.Context(), eid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"movements": list})
	}
}
