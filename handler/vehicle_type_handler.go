package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
)

type VehicleTypeHandler struct {
	service ratepkg.Service
}

func NewVehicleTypeHandler(svc ratepkg.Service) *VehicleTypeHandler {
	return &VehicleTypeHandler{service: svc}
}

type vehicleTypePayload struct {
	Name           string `json:"name" binding:"required"`
	DailyRateCents int64  `json:"daily_rate_cents" binding:"required"`
}

type updateVehicleTypePayload struct {
	Name           *string `json:"name"`
	DailyRateCents *int64  `json:"daily_rate_cents"`
	Active         *bool   `json:"active"`
}

func (h *VehicleTypeHandler) ListVehicleTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListVehicleTypes(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicle_types": list})
	}
}

func (h *VehicleTypeHandler) CreateVehicleType() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p vehicleTypePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		created, err := h.service.CreateVehicleType(c.Request.Context(), ratepkg.CreateVehicleTypeRequest{
			Name:           p.Name,
			DailyRateCents: p.DailyRateCents,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"vehicle_type": created})
	}
}

func (h *VehicleTypeHandler) UpdateVehicleType() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle type id"})
			return
		}
		var p updateVehicleTypePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		updated, err := h.service.UpdateVehicleType(c.Request.Context(), id, ratepkg.UpdateVehicleTypeRequest{
			Name:           p.Name,
			DailyRateCents: p.DailyRateCents,
			Active:         p.Active,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicle_type": updated})
	}
}

func (h *VehicleTypeHandler) DeleteVehicleType() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle type id"})
			return
		}
		if err := h.service.DeleteVehicleType(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
