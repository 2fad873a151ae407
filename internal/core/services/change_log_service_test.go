package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/core/services"
)

type ChangeLogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockChangeLogRepository
	service  portssvc.ChangeLogSvcFacade
}

func (suite *ChangeLogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChangeLogRepository)
	suite.service = services.NewChangeLogService(suite.mockRepo)
}

func (suite *ChangeLogServiceTestSuite) TestListEntityChangeLogs_FiltersOtherOrganizations() {
	ctx := context.Background()
	orgID := domain.NewID()
	otherOrgID := domain.NewID()
	entityID := domain.NewID()

	logs := []domain.EntityChangeLog{
		{ChangeLogID: domain.NewID(), EntityName: domain.ChangeLogEntityClients, EntityID: entityID, OrganizationID: &orgID},
		{ChangeLogID: domain.NewID(), EntityName: domain.ChangeLogEntityClients, EntityID: entityID, OrganizationID: &otherOrgID},
		{ChangeLogID: domain.NewID(), EntityName: domain.ChangeLogEntityClients, EntityID: entityID},
	}

	suite.mockRepo.On("FindLogsByEntity", ctx, domain.ChangeLogEntityClients, entityID).Return(logs, nil).Once()

	result, err := suite.service.ListEntityChangeLogs(ctx, orgID, domain.ChangeLogEntityClients, entityID)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(logs[0].ChangeLogID, result[0].ChangeLogID)
	suite.Equal(logs[2].ChangeLogID, result[1].ChangeLogID)
}

func (suite *ChangeLogServiceTestSuite) TestListEntityChangeLogs_EmptyResult() {
	ctx := context.Background()
	orgID := domain.NewID()
	entityID := domain.NewID()

	suite.mockRepo.On("FindLogsByEntity", ctx, domain.ChangeLogEntityInvoices, entityID).
		Return([]domain.EntityChangeLog{}, nil).Once()

	result, err := suite.service.ListEntityChangeLogs(ctx, orgID, domain.ChangeLogEntityInvoices, entityID)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestChangeLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeLogServiceTestSuite))
}
