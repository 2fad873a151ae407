package repositories

import (
	"context"
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, compared case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the refresh token hash and expiry for a user.
	// Passing nil values clears the stored token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
