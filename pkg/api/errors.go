package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlabs/lumen/pkg/services"
)

// Client-facing error codes.
const (
	CodeResourceLocked = "RESOURCE_LOCKED"
	CodeNotFound       = "NOT_FOUND"
	CodeBadRequest     = "BAD_REQUEST"
	CodeInternal       = "INTERNAL"
)

// respondError maps service-layer errors to the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	if lockErr, ok := services.AsLockError(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"code":          CodeResourceLocked,
			"activeOrderId": lockErr.ActiveOrderID,
			"scope":         lockErr.Scope,
		})
		return
	}

	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"code": CodeBadRequest, "message": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"code": CodeBadRequest, "message": err.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": CodeNotFound, "message": "resource not found"})
		return
	}

	slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"code": CodeInternal, "message": "internal server error"})
}

// respondBadRequest reports a request-shape problem directly.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": CodeBadRequest, "message": message})
}
