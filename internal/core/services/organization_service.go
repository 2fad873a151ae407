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
	"github.com/saiuttej/books-backend/internal/utils/validation"
)

// organizationService implements the OrganizationSvcFacade interface.
type organizationService struct {
	BaseService
	orgRepo       portsrepo.OrganizationRepositoryFacade
	changeLogRepo portsrepo.ChangeLogWriter
	txManager     portsrepo.TxManager
}

// NewOrganizationService creates a new organization service with the provided dependencies.
func NewOrganizationService(
	orgRepo portsrepo.OrganizationRepositoryFacade,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.OrganizationSvcFacade {
	return &organizationService{
		orgRepo:       orgRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
	}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID, userID string) (*domain.Organization, error) {
	if _, err := s.orgRepo.GetMembership(ctx, organizationID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user is not a member of the organization", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to check organization membership", slog.String("organization_id", organizationID))
		return nil, err
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization by ID", slog.String("organization_id", organizationID))
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.FindOrganizationsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations for user")
		return nil, err
	}
	if orgs == nil {
		return []domain.Organization{}, nil
	}
	return orgs, nil
}

func (s *organizationService) GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error) {
	return s.orgRepo.GetMembership(ctx, organizationID, userID)
}

func (s *organizationService) CreateOrganization(ctx context.Context, userID string, req dto.SaveOrganizationRequest) (*domain.Organization, error) {
	if err := s.validateSaveOrganizationRequest(ctx, &req, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: domain.NewID(),
		Name:           req.Name,
		Subdomain:      req.Subdomain,
		CreatedByID:    userID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	membership := domain.OrganizationUser{
		OrganizationID: org.OrganizationID,
		UserID:         userID,
		Role:           domain.OrgRoleOwner,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	changeLog := newChangeLog(domain.ChangeLogEntityOrganizations, org.OrganizationID, domain.ChangeTypeCreated,
		userID, &org.OrganizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Organization '%s' created", org.Name)},
		})

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
			return err
		}
		if err := s.orgRepo.SaveMembership(ctx, membership); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create organization", slog.String("organization_name", org.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Organization created", slog.String("organization_id", org.OrganizationID))
	return &org, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, organizationID, userID string, req dto.SaveOrganizationRequest) (*domain.Organization, error) {
	membership, err := s.orgRepo.GetMembership(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user is not a member of the organization", apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !domain.RoleAtLeast(membership.Role, domain.OrgRoleAdmin) {
		return nil, fmt.Errorf("%w: only owners and admins can update the organization", apperrors.ErrForbidden)
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if err := s.validateSaveOrganizationRequest(ctx, &req, organizationID); err != nil {
		return nil, err
	}

	cs := &changeSet{}
	cs.String("name", "Organization name", &org.Name, req.Name)
	cs.String("subdomain", "Subdomain", &org.Subdomain, req.Subdomain)

	if !cs.HasChanges() {
		s.LogDebug(ctx, "Organization update is a no-op", slog.String("organization_id", organizationID))
		return org, nil
	}

	org.UpdatedAt = time.Now()
	changeLog := newChangeLog(domain.ChangeLogEntityOrganizations, org.OrganizationID, domain.ChangeTypeUpdated,
		userID, &org.OrganizationID, cs.Details())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update organization", slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization updated", slog.String("organization_id", organizationID))
	return org, nil
}

func (s *organizationService) validateSaveOrganizationRequest(ctx context.Context, req *dto.SaveOrganizationRequest, excludeID string) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Subdomain = strings.TrimSpace(req.Subdomain)

	if req.Name == "" {
		return validationErrorf("Organization name is required")
	}
	if res := validation.Slug(req.Subdomain); !res.IsValid {
		return validationErrorf("Subdomain is not valid: %s", res.ErrorText())
	}

	nameExists, err := s.orgRepo.NameExists(ctx, req.Name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check organization name uniqueness: %w", err)
	}
	if nameExists {
		return fmt.Errorf("%w: there is already an organization with same name '%s'", apperrors.ErrDuplicate, req.Name)
	}

	subdomainExists, err := s.orgRepo.SubdomainExists(ctx, req.Subdomain, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check organization subdomain uniqueness: %w", err)
	}
	if subdomainExists {
		return fmt.Errorf("%w: there is already an organization with same subdomain '%s'", apperrors.ErrDuplicate, req.Subdomain)
	}

	return nil
}
