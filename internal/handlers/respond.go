package handlers

import (
	"errors"
	"net/http"

	"portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

const errInternal = "internal server error"

// respondServiceError maps domain errors to HTTP codes in one place.
// Unexpected errors are logged server-side and reported generically.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw("request_failed", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
