package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/platform/config"
	"github.com/saiuttej/books-backend/internal/utils"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleOAuthService implements the GoogleOAuthSvcFacade interface.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service from configuration.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state string: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

func (s *googleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &userInfo, nil
}

func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
