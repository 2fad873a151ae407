package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/platform/config"
	"github.com/saiuttej/books-backend/internal/utils"
)

// tokenService implements the TokenSvcFacade interface.
type tokenService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewTokenService creates a new token service with the provided dependencies.
func NewTokenService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return "", time.Time{}, err
	}

	hash := utils.HashRefreshToken(raw)
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &hash, &expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash")
		return "", time.Time{}, err
	}

	return raw, expiresAt, nil
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if user.RefreshTokenHash == nil || user.RefreshTokenExpiresAt == nil {
		return nil, fmt.Errorf("%w: no refresh token on record", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*user.RefreshTokenExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrForbidden)
	}

	return user, nil
}
