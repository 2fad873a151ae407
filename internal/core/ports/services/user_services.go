package services

import (
	"context"
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new user with a password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// CreateGoogleUser registers a new user from a verified Google profile.
	// Such users have no local password until they set one.
	CreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUser updates the caller's own profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateRefreshToken stores the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error

	// ClearRefreshToken clears the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// ChangePassword verifies the current password and sets a new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
