package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userpkg "github.com/maag070208/AXZY-PARK-API/user"
)

type UserHandler struct {
	service userpkg.Service
}

func NewUserHandler(svc userpkg.Service) *UserHandler {
	return &UserHandler{service: svc}
}

type registerUserPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

func (h *UserHandler) RegisterUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerUserPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		created, err := h.service.RegisterUser(c.Request.Context(), userpkg.RegisterUserRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Role:      p.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": created})
	}
}

func (h *UserHandler) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		u, err := h.service.GetUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

func (h *UserHandler) ListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}

func (h *UserHandler) ListOperators() gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.service.ListOperators(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"operators": list})
	}
}
