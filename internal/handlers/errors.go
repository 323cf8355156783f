package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into a status code.
// Store failures are checked first: a corrupt row must never surface as a client error.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, what string) {
	switch {
	case errors.Is(err, apperrors.ErrStoreFailure):
		logger.Error("Store failure", slog.String("operation", what), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + what})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("operation", what))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("operation", what), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unexpected service error", slog.String("operation", what), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + what})
	}
}

// parseID reads the :id path parameter as an integer identity.
func parseID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("Invalid id path parameter", slog.String("id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
