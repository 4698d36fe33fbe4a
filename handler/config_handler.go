package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maag070208/AXZY-PARK-API/entity"
	ratepkg "github.com/maag070208/AXZY-PARK-API/rate"
)

type ConfigHandler struct {
	service ratepkg.Service
}

func NewConfigHandler(svc ratepkg.Service) *ConfigHandler {
	return &ConfigHandler{service: svc}
}

func (h *ConfigHandler) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := h.service.GetSettings(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": s})
	}
}

// UpdateSettings applies a partial update: absent fields keep their current
// value.
func (h *ConfigHandler) UpdateSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch entity.SettingsPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		updated, err := h.service.UpdateSettings(c.Request.Context(), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": updated})
	}
}
