package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// OrganizationReader defines read operations for organizations and memberships.
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// FindOrganizationsByUserID lists the organizations a user belongs to.
	FindOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error)

	// GetMembership retrieves a user's membership in an organization.
	GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error)

	// NameExists reports whether another organization already uses the name,
	// compared case-insensitively. excludeID is skipped, pass "" on create.
	NameExists(ctx context.Context, name string, excludeID string) (bool, error)

	// SubdomainExists reports whether another organization already uses the
	// subdomain. excludeID is skipped, pass "" on create.
	SubdomainExists(ctx context.Context, subdomain string, excludeID string) (bool, error)
}

// OrganizationWriter defines write operations for organizations and memberships.
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error

	// UpdateOrganization updates an existing organization.
	UpdateOrganization(ctx context.Context, org domain.Organization) error

	// SaveMembership persists a new organization membership.
	SaveMembership(ctx context.Context, member domain.OrganizationUser) error
}

// OrganizationRepositoryFacade combines all organization repository interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
