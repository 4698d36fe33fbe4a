package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
	"github.com/maag070208/AXZY-PARK-API/realtime"
)

type EntryHandler struct {
	service entrypkg.Service
	hub     *realtime.Hub
}

func NewEntryHandler(svc entrypkg.Service, hub *realtime.Hub) *EntryHandler {
	return &EntryHandler{service: svc, hub: hub}
}

type createEntryPayload struct {
	UserID     string `json:"user_id" binding:"required"`
	OperatorID string `json:"operator_id" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Color      string `json:"color"`
	Plates     string `json:"plates"`
	Series     string `json:"series"`
	Mileage    *int   `json:"mileage"`
	Notes      string `json:"notes"`
	TypeID     string `json:"vehicle_type_id"`
	LocationID string `json:"location_id"` // optional manual (shared-zone) assignment
}

func (h *EntryHandler) CreateEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createEntryPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		uid, err := uuid.Parse(p.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		oid, err := uuid.Parse(p.OperatorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator_id"})
			return
		}
		req := entrypkg.AdmitRequest{
			UserID:     uid,
			OperatorID: oid,
			Brand:      p.Brand,
			Model:      p.Model,
			Color:      p.Color,
			Plates:     p.Plates,
			Series:     p.Series,
			Mileage:    p.Mileage,
			Notes:      p.Notes,
		}
		if p.TypeID != "" {
			tid, err := uuid.Parse(p.TypeID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_type_id"})
				return
			}
			req.TypeID = &tid
		}
		if p.LocationID != "" {
			lid, err := uuid.Parse(p.LocationID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
				return
			}
			req.LocationID = &lid
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.Admit(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		if h.hub != nil {
			h.hub.Broadcast("entry.created", realtime.EntryPayload{
				EntryID:    created.ID.String(),
				TicketCode: created.TicketCode,
				LocationID: created.LocationID.String(),
			})
		}
		c.JSON(http.StatusCreated, gin.H{"entry": created})
	}
}

func (h *EntryHandler) GetEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		e, err := h.service.GetEntry(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entry": e})
	}
}

func (h *EntryHandler) ListActiveEntries() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListActiveEntries(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": list})
	}
}

func (h *EntryHandler) ListUserEntries() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		list, err := h.service.ListEntriesForUser(c.Request.Context(), uid, 10)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": list})
	}
}

func (h *EntryHandler) LastUserEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		e, err := h.service.LastEntryForUser(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entry": e})
	}
}

func (h *EntryHandler) CancelEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		e, err := h.service.Cancel(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entry": e})
	}
}

func (h *EntryHandler) DeleteEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}
		if err := h.service.Remove(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
