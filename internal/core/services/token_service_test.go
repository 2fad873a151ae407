package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/core/services"
	"github.com/saiuttej/books-backend/internal/platform/config"
	"github.com/saiuttej/books-backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTokenService(suite.mockUserRepo, &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "books-backend",
		RefreshTokenExpiryDuration: 168 * time.Hour,
	})
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	ctx := context.Background()
	user := &domain.User{UserID: domain.NewID(), IsActive: true}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, time.Second)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_StoresHashNotRawToken() {
	ctx := context.Background()
	user := &domain.User{UserID: domain.NewID(), IsActive: true}

	var storedHash string
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = *args.Get(2).(*string)
		}).Return(nil).Once()

	raw, expiresAt, err := suite.service.GenerateRefreshToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(raw)
	suite.NotEqual(raw, storedHash)
	suite.True(utils.CompareRefreshTokenHash(raw, storedHash))
	suite.WithinDuration(time.Now().Add(168*time.Hour), expiresAt, time.Second)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw := "raw-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiresAt := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                domain.NewID(),
		IsActive:              true,
		RefreshTokenHash:      &hash,
		RefreshTokenExpiresAt: &expiresAt,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	result, err := suite.service.ValidateRefreshToken(ctx, user.UserID, raw)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, result.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw := "raw-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiresAt := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:                domain.NewID(),
		IsActive:              true,
		RefreshTokenHash:      &hash,
		RefreshTokenExpiresAt: &expiresAt,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, user.UserID, raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	hash := utils.HashRefreshToken("the-real-token")
	expiresAt := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                domain.NewID(),
		IsActive:              true,
		RefreshTokenHash:      &hash,
		RefreshTokenExpiresAt: &expiresAt,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, user.UserID, "another-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoTokenOnRecord() {
	ctx := context.Background()
	user := &domain.User{UserID: domain.NewID(), IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, user.UserID, "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Contains(err.Error(), "no refresh token on record")
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownUser() {
	ctx := context.Background()
	userID := domain.NewID()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, userID, "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
