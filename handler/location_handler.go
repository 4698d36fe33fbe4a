package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	locationpkg "github.com/maag070208/AXZY-PARK-API/location"
)

type LocationHandler struct {
	service locationpkg.Service
}

func NewLocationHandler(svc locationpkg.Service) *LocationHandler {
	return &LocationHandler{service: svc}
}

type createLocationPayload struct {
	Name  string `json:"name" binding:"required"`
	Aisle string `json:"aisle"`
	Spot  string `json:"spot"`
}

func (h *LocationHandler) CreateLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createLocationPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		created, err := h.service.CreateLocation(c.Request.Context(), locationpkg.CreateLocationRequest{
			Name:  p.Name,
			Aisle: p.Aisle,
			Spot:  p.Spot,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"location": created})
	}
}

func (h *LocationHandler) ListLocations() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListLocations(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"locations": list})
	}
}

func (h *LocationHandler) GetLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
			return
		}
		l, err := h.service.GetLocation(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"location": l})
	}
}

// ReleaseLocation frees a spot. Safe to repeat: releasing a free spot is a
// no-op.
func (h *LocationHandler) ReleaseLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
			return
		}
		if err := h.service.Release(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"released": id})
	}
}
