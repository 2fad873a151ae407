package pgsql

import (
	"context"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// OrganizationRepository persists organizations and memberships.
type OrganizationRepository struct {
	*Store
}

// NewOrganizationRepository creates an organization repository over the store.
func NewOrganizationRepository(store *Store) *OrganizationRepository {
	return &OrganizationRepository{Store: store}
}

var _ portsrepo.OrganizationRepositoryFacade = (*OrganizationRepository)(nil)

func (r *OrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, subdomain, created_by_id, created_at, updated_at
		FROM organizations
		WHERE organization_id = $1;
	`
	var org domain.Organization
	err := r.db(ctx).QueryRow(ctx, query, organizationID).Scan(
		&org.OrganizationID,
		&org.Name,
		&org.Subdomain,
		&org.CreatedByID,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to find organization by ID")
	}
	return &org, nil
}

func (r *OrganizationRepository) FindOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `
		SELECT o.organization_id, o.name, o.subdomain, o.created_by_id, o.created_at, o.updated_at
		FROM organizations o
		JOIN organization_users ou ON ou.organization_id = o.organization_id
		WHERE ou.user_id = $1
		ORDER BY o.name;
	`
	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, mapDBError(err, "failed to query organizations for user")
	}
	defer rows.Close()

	orgs := []domain.Organization{}
	for rows.Next() {
		var org domain.Organization
		err := rows.Scan(
			&org.OrganizationID,
			&org.Name,
			&org.Subdomain,
			&org.CreatedByID,
			&org.CreatedAt,
			&org.UpdatedAt,
		)
		if err != nil {
			return nil, mapDBError(err, "failed to scan organization row")
		}
		orgs = append(orgs, org)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating organization rows")
	}
	return orgs, nil
}

func (r *OrganizationRepository) GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error) {
	query := `
		SELECT organization_id, user_id, role, created_at, updated_at
		FROM organization_users
		WHERE organization_id = $1 AND user_id = $2;
	`
	var member domain.OrganizationUser
	err := r.db(ctx).QueryRow(ctx, query, organizationID, userID).Scan(
		&member.OrganizationID,
		&member.UserID,
		&member.Role,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to find organization membership")
	}
	return &member, nil
}

func (r *OrganizationRepository) NameExists(ctx context.Context, name string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM organizations
			WHERE lower(name) = lower($1) AND organization_id <> $2
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check organization name")
	}
	return exists, nil
}

func (r *OrganizationRepository) SubdomainExists(ctx context.Context, subdomain string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM organizations
			WHERE subdomain = $1 AND organization_id <> $2
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, subdomain, excludeID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check organization subdomain")
	}
	return exists, nil
}

func (r *OrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (organization_id, name, subdomain, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Subdomain,
		org.CreatedByID,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save organization")
	}
	return nil
}

func (r *OrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $1, subdomain = $2, updated_at = $3
		WHERE organization_id = $4;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		org.Name,
		org.Subdomain,
		org.UpdatedAt,
		org.OrganizationID,
	)
	if err != nil {
		return mapDBError(err, "failed to update organization")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepository) SaveMembership(ctx context.Context, member domain.OrganizationUser) error {
	query := `
		INSERT INTO organization_users (organization_id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		member.OrganizationID,
		member.UserID,
		member.Role,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save organization membership")
	}
	return nil
}
