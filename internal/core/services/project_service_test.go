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

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo   *MockProjectRepository
	mockClientRepo    *MockClientRepository
	mockChangeLogRepo *MockChangeLogRepository
	service           portssvc.ProjectSvcFacade

	orgID  string
	userID string
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockChangeLogRepo = new(MockChangeLogRepository)
	suite.service = services.NewProjectService(
		suite.mockProjectRepo,
		suite.mockClientRepo,
		suite.mockChangeLogRepo,
		fakeTxManager{},
	)
	suite.orgID = domain.NewID()
	suite.userID = domain.NewID()
}

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := dto.SaveProjectRequest{Code: "PRJ-01", Name: "Website revamp", ClientID: &client.ClientID}

	suite.mockProjectRepo.On("CodeExists", ctx, suite.orgID, "PRJ-01", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Code == "PRJ-01" && p.OrganizationID == suite.orgID
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].EntityName == domain.ChangeLogEntityProjects
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(project.ProjectID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_InvalidCode() {
	ctx := context.Background()
	req := dto.SaveProjectRequest{Code: "prj01", Name: "Website revamp"}

	_, err := suite.service.CreateProject(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DuplicateCode() {
	ctx := context.Background()
	req := dto.SaveProjectRequest{Code: "PRJ-01", Name: "Website revamp"}

	suite.mockProjectRepo.On("CodeExists", ctx, suite.orgID, "PRJ-01", "").Return(true, nil).Once()

	_, err := suite.service.CreateProject(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "there is already a project with same code 'PRJ-01'")
}

func (suite *ProjectServiceTestSuite) TestCreateProject_ClientOfOtherOrganization() {
	ctx := context.Background()
	clientID := domain.NewID()
	req := dto.SaveProjectRequest{Code: "PRJ-01", Name: "Website revamp", ClientID: &clientID}

	suite.mockProjectRepo.On("CodeExists", ctx, suite.orgID, "PRJ-01", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateProject(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Client not found or is not part of the organization")
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_NoOpSkipsWrites() {
	ctx := context.Background()
	projectID := domain.NewID()
	existing := &domain.Project{
		ProjectID:      projectID,
		OrganizationID: suite.orgID,
		Code:           "PRJ-01",
		Name:           "Website revamp",
	}
	req := dto.SaveProjectRequest{Code: "PRJ-01", Name: "Website revamp"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.orgID, projectID).Return(existing, nil).Once()
	suite.mockProjectRepo.On("CodeExists", ctx, suite.orgID, "PRJ-01", projectID).Return(false, nil).Once()

	project, err := suite.service.UpdateProject(ctx, suite.orgID, suite.userID, projectID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
	suite.mockChangeLogRepo.AssertNotCalled(suite.T(), "InsertLogs", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_WritesDeletionLog() {
	ctx := context.Background()
	projectID := domain.NewID()
	existing := &domain.Project{ProjectID: projectID, OrganizationID: suite.orgID, Code: "PRJ-01", Name: "Website revamp"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.orgID, projectID).Return(existing, nil).Once()
	suite.mockProjectRepo.On("DeleteProject", ctx, suite.orgID, projectID).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeDeleted
	})).Return(nil).Once()

	err := suite.service.DeleteProject(ctx, suite.orgID, suite.userID, projectID)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
