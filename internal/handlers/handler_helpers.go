package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/middleware"
)

// respondError maps application errors to HTTP responses. Validation and
// duplicate errors carry user-facing messages; everything unexpected is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired, please login again"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requestScope extracts the authenticated user and active organization from
// the request context. Both are guaranteed by the auth and organization
// middleware on tenant-scoped routes.
func requestScope(c *gin.Context) (organizationID, userID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", "", false
	}
	organizationID, _, ok = middleware.GetOrganizationFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": middleware.OrganizationHeader + " header required"})
		return "", "", false
	}
	return organizationID, userID, true
}

// bindJSON binds the request body and reports a uniform 400 on failure.
// Binding-tag violations are unwrapped into per-field messages.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + strings.Join(msgs, ", ")})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
	return false
}
