package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// OrganizationReaderSvc defines read operations for organizations.
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves an organization the user is a member of.
	GetOrganizationByID(ctx context.Context, organizationID, userID string) (*domain.Organization, error)

	// ListUserOrganizations lists the organizations the user belongs to.
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)

	// GetMembership retrieves a user's membership in an organization.
	GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error)
}

// OrganizationWriterSvc defines write operations for organizations.
type OrganizationWriterSvc interface {
	// CreateOrganization creates a new organization with the caller as owner.
	CreateOrganization(ctx context.Context, userID string, req dto.SaveOrganizationRequest) (*domain.Organization, error)

	// UpdateOrganization applies changed fields to an organization. Only
	// owners and admins may update.
	UpdateOrganization(ctx context.Context, organizationID, userID string, req dto.SaveOrganizationRequest) (*domain.Organization, error)
}

// OrganizationSvcFacade combines all organization service interfaces.
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
