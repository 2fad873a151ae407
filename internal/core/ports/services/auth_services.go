package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a new short-lived access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new refresh token, stores its hash on the
	// user record and returns the raw token with its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken validates a raw refresh token against the user's
	// stored token details and returns the user when valid and unexpired.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's Google profile using the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates a Google ID token string and returns its
	// payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
