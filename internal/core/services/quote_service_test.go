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

type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo     *MockQuoteRepository
	mockClientRepo    *MockClientRepository
	mockProjectRepo   *MockProjectRepository
	mockChangeLogRepo *MockChangeLogRepository
	service           portssvc.QuoteSvcFacade

	orgID  string
	userID string
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockChangeLogRepo = new(MockChangeLogRepository)
	suite.service = services.NewQuoteService(
		suite.mockQuoteRepo,
		suite.mockClientRepo,
		suite.mockProjectRepo,
		suite.mockChangeLogRepo,
		fakeTxManager{},
	)
	suite.orgID = domain.NewID()
	suite.userID = domain.NewID()
}

// validQuoteRequest builds a request with no dates and no advance tax: one
// line of 3 x 200.00 at GST 5%.
func (suite *QuoteServiceTestSuite) validQuoteRequest(clientID string) dto.SaveQuoteRequest {
	return dto.SaveQuoteRequest{
		ClientID: clientID,
		QuoteNo:  "QT-001",
		Items: []dto.DocumentItemRequest{
			{
				Name:         "Site survey",
				Quantity:     3,
				UnitPrice:    dec("200.00"),
				Price:        dec("600.00"),
				TaxRateKey:   "GST_5",
				TaxRateValue: dec("5"),
				TaxAmount:    dec("30.00"),
				TotalAmount:  dec("630.00"),
			},
		},
		SubTotal:    dec("600.00"),
		TotalAmount: dec("630.00"),
	}
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_SuccessWithoutDates() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Beta Traders"}
	req := suite.validQuoteRequest(client.ClientID)

	suite.mockQuoteRepo.On("QuoteNoExists", ctx, suite.orgID, "QT-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.AnythingOfType("domain.Quote")).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 &&
			logs[0].EntityName == domain.ChangeLogEntityQuotes &&
			logs[0].ChangeType == domain.ChangeTypeCreated
	})).Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.Nil(quote.IssueDate)
	suite.Nil(quote.ExpiryDate)
	suite.Len(quote.Items, 1)
	suite.Equal(quote.QuoteID, quote.Items[0].QuoteID)

	suite.mockQuoteRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_ExpiryBeforeIssueDate() {
	ctx := context.Background()
	req := suite.validQuoteRequest(domain.NewID())
	req.IssueDate = strPtr("2025-05-10")
	req.ExpiryDate = strPtr("2025-05-01")

	_, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Expiry date should be after issue date")
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_InvalidDateFormat() {
	ctx := context.Background()
	req := suite.validQuoteRequest(domain.NewID())
	req.IssueDate = strPtr("10-05-2025")

	_, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Issue date is not valid")
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_DuplicateNumber() {
	ctx := context.Background()
	req := suite.validQuoteRequest(domain.NewID())

	suite.mockQuoteRepo.On("QuoteNoExists", ctx, suite.orgID, "QT-001", "").Return(true, nil).Once()

	_, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "Quote number already exists")
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "SaveQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_UnknownContactPerson() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Beta Traders"}
	req := suite.validQuoteRequest(client.ClientID)
	unknownID := domain.NewID()
	req.ContactPersonIDs = []string{unknownID}

	suite.mockQuoteRepo.On("QuoteNoExists", ctx, suite.orgID, "QT-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockClientRepo.On("FindContactPersonsByIDs", ctx, client.ClientID, []string{unknownID}).
		Return([]domain.ClientContactPerson{}, nil).Once()

	_, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Invalid contact person Ids")
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_SnapshotsContactPersons() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Beta Traders"}
	req := suite.validQuoteRequest(client.ClientID)
	person := domain.ClientContactPerson{
		ContactPersonID: domain.NewID(),
		ClientID:        client.ClientID,
		Name:            "Ravi",
		Email:           strPtr("ravi@example.com"),
	}
	req.ContactPersonIDs = []string{person.ContactPersonID}

	suite.mockQuoteRepo.On("QuoteNoExists", ctx, suite.orgID, "QT-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockClientRepo.On("FindContactPersonsByIDs", ctx, client.ClientID, []string{person.ContactPersonID}).
		Return([]domain.ClientContactPerson{person}, nil).Once()
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.AnythingOfType("domain.Quote")).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.Anything).Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().Len(quote.OtherDetails.ContactPersons, 1)
	suite.Equal(person.ContactPersonID, quote.OtherDetails.ContactPersons[0].ContactPersonID)
	suite.Equal("Ravi", quote.OtherDetails.ContactPersons[0].Name)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuote_NoOpSkipsWrites() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Beta Traders"}
	req := suite.validQuoteRequest(client.ClientID)
	quoteID := domain.NewID()

	existing := &domain.Quote{
		QuoteID:        quoteID,
		OrganizationID: suite.orgID,
		ClientID:       client.ClientID,
		QuoteNo:        req.QuoteNo,
		SubTotal:       req.SubTotal,
		TotalAmount:    req.TotalAmount,
		Items: []domain.QuoteItem{
			{
				QuoteItemID:  domain.NewID(),
				QuoteID:      quoteID,
				Position:     1,
				Name:         "Site survey",
				Quantity:     3,
				UnitPrice:    dec("200.00"),
				Price:        dec("600.00"),
				TaxRateKey:   "GST_5",
				TaxRateValue: dec("5"),
				TaxAmount:    dec("30.00"),
				TotalAmount:  dec("630.00"),
			},
		},
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, suite.orgID, quoteID).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("QuoteNoExists", ctx, suite.orgID, "QT-001", quoteID).Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()

	quote, err := suite.service.UpdateQuote(ctx, suite.orgID, suite.userID, quoteID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuote", mock.Anything, mock.Anything)
	suite.mockChangeLogRepo.AssertNotCalled(suite.T(), "InsertLogs", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestDeleteQuote_WritesDeletionLog() {
	ctx := context.Background()
	quoteID := domain.NewID()
	existing := &domain.Quote{QuoteID: quoteID, OrganizationID: suite.orgID, QuoteNo: "QT-009"}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, suite.orgID, quoteID).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("DeleteQuote", ctx, suite.orgID, quoteID).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeDeleted && logs[0].EntityID == quoteID
	})).Return(nil).Once()

	err := suite.service.DeleteQuote(ctx, suite.orgID, suite.userID, quoteID)

	suite.Require().NoError(err)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
