package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/utils"
	"github.com/saiuttej/books-backend/internal/utils/validation"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if res := validation.Email(req.Email); !res.IsValid {
		return nil, validationErrorf("Email is not valid: %s", res.ErrorText())
	}
	if res := validation.Password(req.Password); !res.IsValid {
		return nil, validationErrorf("Password is not valid: %s", res.ErrorText())
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: an account with this email already exists", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:     domain.NewID(),
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   &hash,
		Gender:     req.Gender,
		IsActive:   true,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) CreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" || !info.EmailVerified {
		return nil, validationErrorf("Google account email is missing or not verified")
	}

	now := time.Now()
	user := domain.User{
		UserID:     domain.NewID(),
		Email:      email,
		FullName:   info.Name,
		IsActive:   true,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user from Google profile")
		return nil, err
	}

	s.LogInfo(ctx, "User registered via Google", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.FullName != nil && *req.FullName != user.FullName {
		user.FullName = *req.FullName
		changed = true
	}
	if req.Gender != nil && !nullStringEqual(req.Gender, user.Gender) {
		user.Gender = req.Gender
		changed = true
	}
	if !changed {
		return user, nil
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User profile updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, &refreshTokenHash, &expiresAt)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to find user for authentication")
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrForbidden)
	}
	if user.Password == nil || !utils.CheckPasswordHash(password, *user.Password) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Password == nil || !utils.CheckPasswordHash(req.CurrentPassword, *user.Password) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	}
	if res := validation.Password(req.NewPassword); !res.IsValid {
		return validationErrorf("Password is not valid: %s", res.ErrorText())
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return err
	}

	user.Password = &hash
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}
