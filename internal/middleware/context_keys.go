package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request context keys. Using a custom type
// prevents collisions with keys set by other packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	orgIDKey     = contextKey("organizationID")
	orgRoleKey   = contextKey("organizationRole")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It falls back to the default logger when none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context and reports whether it was present.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx is the standard-context variant of GetUserIDFromContext.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetOrganizationFromCtx retrieves the active organization ID and the caller's
// role in it from the request context.
func GetOrganizationFromCtx(ctx context.Context) (orgID string, role string, ok bool) {
	orgID, okID := ctx.Value(orgIDKey).(string)
	role, okRole := ctx.Value(orgRoleKey).(string)
	return orgID, role, okID && okRole && orgID != ""
}
