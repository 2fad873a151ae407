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

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo    *MockClientRepository
	mockChangeLogRepo *MockChangeLogRepository
	service           portssvc.ClientSvcFacade

	orgID  string
	userID string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockChangeLogRepo = new(MockChangeLogRepository)
	suite.service = services.NewClientService(suite.mockClientRepo, suite.mockChangeLogRepo, fakeTxManager{})
	suite.orgID = domain.NewID()
	suite.userID = domain.NewID()
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		ContactPersons: []dto.ContactPersonRequest{
			{Name: "Jane"},
		},
	}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", "").Return(false, nil).Once()
	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Acme Corp" && len(c.ContactPersons) == 1 && c.ContactPersons[0].Name == "Jane"
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 2 &&
			logs[0].EntityName == domain.ChangeLogEntityClients &&
			logs[1].EntityName == domain.ChangeLogEntityClientContactPersons
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.NotEmpty(client.ClientID)
	suite.Equal(suite.orgID, client.OrganizationID)
	suite.Require().Len(client.ContactPersons, 1)
	suite.Equal(client.ClientID, client.ContactPersons[0].ClientID)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_RejectsContactPersonID() {
	ctx := context.Background()
	existingID := domain.NewID()
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		ContactPersons: []dto.ContactPersonRequest{
			{ContactPersonID: &existingID, Name: "Jane"},
		},
	}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", "").Return(false, nil).Once()

	_, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Invalid contact person ID")
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateName() {
	ctx := context.Background()
	req := dto.SaveClientRequest{Name: "Acme Corp", CustomerType: domain.CustomerTypeBusiness}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", "").Return(true, nil).Once()

	_, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "there is already a client with same name 'Acme Corp'")
}

func (suite *ClientServiceTestSuite) TestCreateClient_GSTINRequiredForRegisteredBusiness() {
	ctx := context.Background()
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		GSTTreatment: strPtr(domain.GSTTreatmentRegisteredRegular),
	}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", "").Return(false, nil).Once()

	_, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "GSTIN is not valid")
}

func (suite *ClientServiceTestSuite) TestCreateClient_DropsGSTINForConsumer() {
	ctx := context.Background()
	req := dto.SaveClientRequest{
		Name:         "Walk-in",
		CustomerType: domain.CustomerTypeIndividual,
		GSTTreatment: strPtr(domain.GSTTreatmentConsumer),
		GSTIN:        strPtr("29ABCDE1234FZ15"),
	}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Walk-in", "").Return(false, nil).Once()
	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.GSTIN == nil
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.Anything).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Nil(client.GSTIN)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_CanonicalizesMobileNumber() {
	ctx := context.Background()
	req := dto.SaveClientRequest{
		Name:              "Acme Corp",
		CustomerType:      domain.CustomerTypeBusiness,
		MobileCountryCode: strPtr("91"),
		MobileNumber:      strPtr("98765 43210"),
	}

	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", "").Return(false, nil).Once()
	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.Anything).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client.MobileCountryCode)
	suite.Require().NotNil(client.MobileNumber)
	suite.Equal("+91", *client.MobileCountryCode)
	suite.Equal("9876543210", *client.MobileNumber)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NoOpSkipsWrites() {
	ctx := context.Background()
	clientID := domain.NewID()
	contactID := domain.NewID()
	existing := &domain.Client{
		ClientID:       clientID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corp",
		CustomerType:   domain.CustomerTypeBusiness,
		ContactPersons: []domain.ClientContactPerson{
			{ContactPersonID: contactID, ClientID: clientID, Name: "Jane"},
		},
	}
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		ContactPersons: []dto.ContactPersonRequest{
			{ContactPersonID: &contactID, Name: "Jane"},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", clientID).Return(false, nil).Once()

	client, err := suite.service.UpdateClient(ctx, suite.orgID, suite.userID, clientID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
	suite.mockChangeLogRepo.AssertNotCalled(suite.T(), "InsertLogs", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_ReconcilesContactPersons() {
	ctx := context.Background()
	clientID := domain.NewID()
	keepID := domain.NewID()
	dropID := domain.NewID()
	existing := &domain.Client{
		ClientID:       clientID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corp",
		CustomerType:   domain.CustomerTypeBusiness,
		ContactPersons: []domain.ClientContactPerson{
			{ContactPersonID: keepID, ClientID: clientID, Name: "Jane"},
			{ContactPersonID: dropID, ClientID: clientID, Name: "Bob"},
		},
	}
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		ContactPersons: []dto.ContactPersonRequest{
			{ContactPersonID: &keepID, Name: "Janet"},
			{Name: "Carl"},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", clientID).Return(false, nil).Once()
	suite.mockClientRepo.On("UpdateContactPersons", ctx, mock.MatchedBy(func(persons []domain.ClientContactPerson) bool {
		return len(persons) == 1 && persons[0].ContactPersonID == keepID && persons[0].Name == "Janet"
	})).Return(nil).Once()
	suite.mockClientRepo.On("InsertContactPersons", ctx, mock.MatchedBy(func(persons []domain.ClientContactPerson) bool {
		return len(persons) == 1 && persons[0].Name == "Carl" && persons[0].ClientID == clientID
	})).Return(nil).Once()
	suite.mockClientRepo.On("DeleteContactPersons", ctx, clientID, []string{dropID}).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		if len(logs) != 3 {
			return false
		}
		types := map[string]int{}
		for _, l := range logs {
			if l.EntityName != domain.ChangeLogEntityClientContactPersons {
				return false
			}
			types[l.ChangeType]++
		}
		return types[domain.ChangeTypeUpdated] == 1 &&
			types[domain.ChangeTypeCreated] == 1 &&
			types[domain.ChangeTypeDeleted] == 1
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, suite.orgID, suite.userID, clientID, req)

	suite.Require().NoError(err)
	suite.Require().Len(client.ContactPersons, 2)
	suite.Equal("Janet", client.ContactPersons[0].Name)
	suite.Equal("Carl", client.ContactPersons[1].Name)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_UnknownContactPersonID() {
	ctx := context.Background()
	clientID := domain.NewID()
	unknownID := domain.NewID()
	existing := &domain.Client{
		ClientID:       clientID,
		OrganizationID: suite.orgID,
		Name:           "Acme Corp",
		CustomerType:   domain.CustomerTypeBusiness,
	}
	req := dto.SaveClientRequest{
		Name:         "Acme Corp",
		CustomerType: domain.CustomerTypeBusiness,
		ContactPersons: []dto.ContactPersonRequest{
			{ContactPersonID: &unknownID, Name: "Ghost"},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("NameExists", ctx, suite.orgID, "Acme Corp", clientID).Return(false, nil).Once()

	_, err := suite.service.UpdateClient(ctx, suite.orgID, suite.userID, clientID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "does not belong to the client")
}

func (suite *ClientServiceTestSuite) TestDeleteClient_WritesDeletionLog() {
	ctx := context.Background()
	clientID := domain.NewID()
	existing := &domain.Client{ClientID: clientID, OrganizationID: suite.orgID, Name: "Acme Corp"}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("DeleteClient", ctx, suite.orgID, clientID).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeDeleted
	})).Return(nil).Once()

	err := suite.service.DeleteClient(ctx, suite.orgID, suite.userID, clientID)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
