package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/core/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockOrgRepo       *MockOrganizationRepository
	mockChangeLogRepo *MockChangeLogRepository
	service           portssvc.OrganizationSvcFacade

	userID string
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockChangeLogRepo = new(MockChangeLogRepository)
	suite.service = services.NewOrganizationService(suite.mockOrgRepo, suite.mockChangeLogRepo, fakeTxManager{})
	suite.userID = domain.NewID()
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_Success() {
	ctx := context.Background()
	req := dto.SaveOrganizationRequest{Name: "Acme Books", Subdomain: "acme-books"}

	suite.mockOrgRepo.On("NameExists", ctx, "Acme Books", "").Return(false, nil).Once()
	suite.mockOrgRepo.On("SubdomainExists", ctx, "acme-books", "").Return(false, nil).Once()
	suite.mockOrgRepo.On("SaveOrganization", ctx, mock.AnythingOfType("domain.Organization")).Return(nil).Once()
	suite.mockOrgRepo.On("SaveMembership", ctx, mock.MatchedBy(func(m domain.OrganizationUser) bool {
		return m.UserID == suite.userID && m.Role == domain.OrgRoleOwner
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].EntityName == domain.ChangeLogEntityOrganizations
	})).Return(nil).Once()

	org, err := suite.service.CreateOrganization(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.NotEmpty(org.OrganizationID)
	suite.Equal(suite.userID, org.CreatedByID)

	suite.mockOrgRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_InvalidSubdomain() {
	ctx := context.Background()
	req := dto.SaveOrganizationRequest{Name: "Acme Books", Subdomain: "Acme Books"}

	_, err := suite.service.CreateOrganization(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Subdomain is not valid")
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_DuplicateName() {
	ctx := context.Background()
	req := dto.SaveOrganizationRequest{Name: "Acme Books", Subdomain: "acme-books"}

	suite.mockOrgRepo.On("NameExists", ctx, "Acme Books", "").Return(true, nil).Once()

	_, err := suite.service.CreateOrganization(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SubdomainExists", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID_NotAMember() {
	ctx := context.Background()
	orgID := domain.NewID()

	suite.mockOrgRepo.On("GetMembership", ctx, orgID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOrganizationByID(ctx, orgID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_MemberForbidden() {
	ctx := context.Background()
	orgID := domain.NewID()
	membership := &domain.OrganizationUser{OrganizationID: orgID, UserID: suite.userID, Role: domain.OrgRoleMember}

	suite.mockOrgRepo.On("GetMembership", ctx, orgID, suite.userID).Return(membership, nil).Once()

	_, err := suite.service.UpdateOrganization(ctx, orgID, suite.userID, dto.SaveOrganizationRequest{
		Name: "Acme Books", Subdomain: "acme-books",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "only owners and admins can update the organization")
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_NoOpSkipsWrites() {
	ctx := context.Background()
	orgID := domain.NewID()
	membership := &domain.OrganizationUser{OrganizationID: orgID, UserID: suite.userID, Role: domain.OrgRoleOwner}
	org := &domain.Organization{OrganizationID: orgID, Name: "Acme Books", Subdomain: "acme-books", CreatedByID: suite.userID}

	suite.mockOrgRepo.On("GetMembership", ctx, orgID, suite.userID).Return(membership, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()
	suite.mockOrgRepo.On("NameExists", ctx, "Acme Books", orgID).Return(false, nil).Once()
	suite.mockOrgRepo.On("SubdomainExists", ctx, "acme-books", orgID).Return(false, nil).Once()

	result, err := suite.service.UpdateOrganization(ctx, orgID, suite.userID, dto.SaveOrganizationRequest{
		Name: "Acme Books", Subdomain: "acme-books",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "UpdateOrganization", mock.Anything, mock.Anything)
	suite.mockChangeLogRepo.AssertNotCalled(suite.T(), "InsertLogs", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_RenameWritesLog() {
	ctx := context.Background()
	orgID := domain.NewID()
	membership := &domain.OrganizationUser{OrganizationID: orgID, UserID: suite.userID, Role: domain.OrgRoleAdmin}
	org := &domain.Organization{OrganizationID: orgID, Name: "Acme Books", Subdomain: "acme-books", CreatedByID: suite.userID}

	suite.mockOrgRepo.On("GetMembership", ctx, orgID, suite.userID).Return(membership, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()
	suite.mockOrgRepo.On("NameExists", ctx, "Acme Ledgers", orgID).Return(false, nil).Once()
	suite.mockOrgRepo.On("SubdomainExists", ctx, "acme-books", orgID).Return(false, nil).Once()
	suite.mockOrgRepo.On("UpdateOrganization", ctx, mock.MatchedBy(func(o domain.Organization) bool {
		return o.Name == "Acme Ledgers" && o.Subdomain == "acme-books"
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeUpdated
	})).Return(nil).Once()

	result, err := suite.service.UpdateOrganization(ctx, orgID, suite.userID, dto.SaveOrganizationRequest{
		Name: "Acme Ledgers", Subdomain: "acme-books",
	})

	suite.Require().NoError(err)
	suite.Equal("Acme Ledgers", result.Name)
	suite.mockOrgRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
