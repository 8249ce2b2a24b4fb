// Package handler contains the Gin HTTP handlers.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/validator"
)

// writeError translates a service error into an HTTP response. Validation
// failures carry per-field messages; everything unrecognized becomes a 500
// without leaking the underlying error.
func writeError(c *gin.Context, err error) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.FieldErrors(ve)})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "a user with that username or email already exists"})
	case errors.Is(err, domain.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrBadCredentials.Error()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
