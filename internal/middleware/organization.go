package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
)

// OrganizationHeader carries the active organization for tenant-scoped routes.
const OrganizationHeader = "X-Organization-Id"

// MembershipResolver looks up a user's membership in an organization.
type MembershipResolver interface {
	GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error)
}

// OrganizationMiddleware resolves the X-Organization-Id header to a membership
// of the authenticated user and stores the organization ID and role in the
// request context. Requests without a valid membership are rejected before any
// handler runs, so tenant scoping below this point can trust the context.
func OrganizationMiddleware(resolver MembershipResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		orgID := c.GetHeader(OrganizationHeader)
		if orgID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": OrganizationHeader + " header required"})
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		membership, err := resolver.GetMembership(c.Request.Context(), orgID, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Organization membership not found", slog.String("organization_id", orgID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You are not a member of this organization"})
				return
			}
			logger.Error("Failed to resolve organization membership", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), orgIDKey, membership.OrganizationID)
		ctx = context.WithValue(ctx, orgRoleKey, membership.Role)
		ctx = context.WithValue(ctx, loggerCtxKey, logger.With(slog.String("organization_id", membership.OrganizationID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects requests whose organization role ranks below minimum.
func RequireRole(minimum string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := GetOrganizationFromCtx(c.Request.Context())
		if !ok || !domain.RoleAtLeast(role, minimum) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this action"})
			return
		}
		c.Next()
	}
}
