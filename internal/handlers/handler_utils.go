package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps the service error taxonomy onto HTTP status codes.
// Unknown errors stay opaque to the client and are logged at error level.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, publicMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, apperrors.ErrReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource is still referenced"})
	default:
		logger.Error(publicMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": publicMsg})
	}
}
