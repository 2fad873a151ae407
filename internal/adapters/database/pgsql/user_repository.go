package pgsql

import (
	"context"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// UserRepository persists users.
type UserRepository struct {
	*Store
}

// NewUserRepository creates a user repository over the store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{Store: store}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

const userColumns = `user_id, email, full_name, password, gender, is_active,
		refresh_token_hash, refresh_token_expires_at, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.Gender,
		&user.IsActive,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1;
	`
	user, err := scanUser(r.db(ctx).QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapDBError(err, "failed to find user by ID")
	}
	return user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1);
	`
	user, err := scanUser(r.db(ctx).QueryRow(ctx, query, email))
	if err != nil {
		return nil, mapDBError(err, "failed to find user by email")
	}
	return user, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, full_name, password, gender, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		user.UserID,
		user.Email,
		user.FullName,
		user.Password,
		user.Gender,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save user")
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $1, password = $2, gender = $3, is_active = $4, updated_at = $5
		WHERE user_id = $6;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		user.FullName,
		user.Password,
		user.Gender,
		user.IsActive,
		user.UpdatedAt,
		user.UserID,
	)
	if err != nil {
		return mapDBError(err, "failed to update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expires_at = $2, updated_at = now()
		WHERE user_id = $3;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query, tokenHash, expiresAt, userID)
	if err != nil {
		return mapDBError(err, "failed to update refresh token")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
