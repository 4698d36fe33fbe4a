package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maag070208/AXZY-PARK-API/apperr"
)

// respondError maps the engine's error taxonomy onto HTTP statuses.
// Conflicts are retryable by the client; everything else needs changed input.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrNoCapacity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidArgument), errors.Is(err, apperr.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
