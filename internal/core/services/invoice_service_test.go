package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/core/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo   *MockInvoiceRepository
	mockClientRepo    *MockClientRepository
	mockProjectRepo   *MockProjectRepository
	mockChangeLogRepo *MockChangeLogRepository
	service           portssvc.InvoiceSvcFacade

	orgID  string
	userID string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockChangeLogRepo = new(MockChangeLogRepository)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockClientRepo,
		suite.mockProjectRepo,
		suite.mockChangeLogRepo,
		fakeTxManager{},
	)
	suite.orgID = domain.NewID()
	suite.userID = domain.NewID()
}

// validInvoiceRequest builds a request whose every derived figure is correct:
// 2 x 500.00 with GST 18% per line, TDS professional fees 10% on the subtotal.
func (suite *InvoiceServiceTestSuite) validInvoiceRequest(clientID string) dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		ClientID:    clientID,
		InvoiceNo:   "INV-001",
		InvoiceDate: "2025-04-01",
		DueDate:     "2025-04-30",
		Items: []dto.DocumentItemRequest{
			{
				Name:         "Consulting",
				Quantity:     2,
				UnitPrice:    dec("500.00"),
				Price:        dec("1000.00"),
				TaxRateKey:   "GST_18",
				TaxRateValue: dec("18"),
				TaxAmount:    dec("180.00"),
				TotalAmount:  dec("1180.00"),
			},
		},
		SubTotal:          dec("1000.00"),
		AdvanceTaxType:    strPtr(domain.AdvanceTaxTypeTDS),
		AdvanceTaxSubType: strPtr("PROFESSIONAL_FEES_10"),
		AdvanceTaxRate:    dec("10"),
		AdvanceTaxAmount:  dec("100.00"),
		TotalAmount:       dec("1080.00"),
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := suite.validInvoiceRequest(client.ClientID)

	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 &&
			logs[0].EntityName == domain.ChangeLogEntityInvoices &&
			logs[0].ChangeType == domain.ChangeTypeCreated
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal("INV-001", invoice.InvoiceNo)
	suite.Len(invoice.Items, 1)
	suite.Equal(1, invoice.Items[0].Position)
	suite.Equal(invoice.InvoiceID, invoice.Items[0].InvoiceID)
	suite.True(invoice.TotalAmount.Equal(dec("1080.00")))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PriceMismatch() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	req.Items[0].Price = dec("999.99")

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Price should be equal to quantity x unit price")
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "InvoiceNoExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateItemNames() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	second := req.Items[0]
	second.Name = "consulting"
	req.Items = append(req.Items, second)

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "multiple items with the same name: consulting")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TaxAmountMismatch() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	req.Items[0].TaxAmount = dec("179.99")
	req.Items[0].TotalAmount = dec("1179.99")

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Tax amount should be 180")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AdvanceTaxAmountMismatch() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	req.AdvanceTaxAmount = dec("99.99")
	req.TotalAmount = dec("1080.01")

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Tax amount should be equal to subtotal x tax rate / 100")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AdvanceTaxWithoutType() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	req.AdvanceTaxType = nil
	req.AdvanceTaxSubType = nil

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Tax rate should be 0 when tax type is not provided")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TDSSubtractsFromGrandTotal() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	// Submitting the TCS-style sum for a TDS document must be rejected.
	req.TotalAmount = dec("1280.00")

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "1180.00 - 100.00")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TCSAddsToGrandTotal() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := suite.validInvoiceRequest(client.ClientID)
	req.AdvanceTaxType = strPtr(domain.AdvanceTaxTypeTCS)
	req.AdvanceTaxSubType = strPtr("SALE_OF_GOODS_1")
	req.AdvanceTaxRate = dec("1")
	req.AdvanceTaxAmount = dec("10.00")
	req.TotalAmount = dec("1190.00")

	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(invoice.TotalAmount.Equal(dec("1190.00")))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())

	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", "").Return(true, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeInvoiceDate() {
	ctx := context.Background()
	req := suite.validInvoiceRequest(domain.NewID())
	req.DueDate = "2025-03-31"

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Due date should be after invoice date")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ProjectOfOtherClient() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := suite.validInvoiceRequest(client.ClientID)
	projectID := domain.NewID()
	req.ProjectID = &projectID

	otherClientID := domain.NewID()
	project := &domain.Project{ProjectID: projectID, OrganizationID: suite.orgID, ClientID: &otherClientID}

	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", "").Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.orgID, projectID).Return(project, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.orgID, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Project does not belong to the specified client")
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NoOpSkipsWrites() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := suite.validInvoiceRequest(client.ClientID)
	invoiceID := domain.NewID()

	existing := &domain.Invoice{
		InvoiceID:         invoiceID,
		OrganizationID:    suite.orgID,
		ClientID:          client.ClientID,
		InvoiceNo:         req.InvoiceNo,
		InvoiceDate:       req.InvoiceDate,
		DueDate:           req.DueDate,
		SubTotal:          req.SubTotal,
		AdvanceTaxType:    req.AdvanceTaxType,
		AdvanceTaxSubType: req.AdvanceTaxSubType,
		AdvanceTaxRate:    req.AdvanceTaxRate,
		AdvanceTaxAmount:  req.AdvanceTaxAmount,
		TotalAmount:       req.TotalAmount,
		Items: []domain.InvoiceItem{
			{
				InvoiceItemID: domain.NewID(),
				InvoiceID:     invoiceID,
				Position:      1,
				Name:          "Consulting",
				Quantity:      2,
				UnitPrice:     dec("500.00"),
				Price:         dec("1000.00"),
				TaxRateKey:    "GST_18",
				TaxRateValue:  dec("18"),
				TaxAmount:     dec("180.00"),
				TotalAmount:   dec("1180.00"),
			},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", invoiceID).Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, suite.orgID, suite.userID, invoiceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
	suite.mockChangeLogRepo.AssertNotCalled(suite.T(), "InsertLogs", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ItemChangeReplacesItems() {
	ctx := context.Background()
	client := &domain.Client{ClientID: domain.NewID(), OrganizationID: suite.orgID, Name: "Acme Corp"}
	req := suite.validInvoiceRequest(client.ClientID)
	invoiceID := domain.NewID()

	existing := &domain.Invoice{
		InvoiceID:         invoiceID,
		OrganizationID:    suite.orgID,
		ClientID:          client.ClientID,
		InvoiceNo:         req.InvoiceNo,
		InvoiceDate:       req.InvoiceDate,
		DueDate:           req.DueDate,
		SubTotal:          req.SubTotal,
		AdvanceTaxType:    req.AdvanceTaxType,
		AdvanceTaxSubType: req.AdvanceTaxSubType,
		AdvanceTaxRate:    req.AdvanceTaxRate,
		AdvanceTaxAmount:  req.AdvanceTaxAmount,
		TotalAmount:       req.TotalAmount,
		Items: []domain.InvoiceItem{
			{
				InvoiceItemID: domain.NewID(),
				InvoiceID:     invoiceID,
				Position:      1,
				Name:          "Old line",
				Quantity:      2,
				UnitPrice:     dec("500.00"),
				Price:         dec("1000.00"),
				TaxRateKey:    "GST_18",
				TaxRateValue:  dec("18"),
				TaxAmount:     dec("180.00"),
				TotalAmount:   dec("1180.00"),
			},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("InvoiceNoExists", ctx, suite.orgID, "INV-001", invoiceID).Return(false, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.orgID, client.ClientID).Return(client, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return len(inv.Items) == 1 && inv.Items[0].Name == "Consulting" && inv.Items[0].InvoiceID == invoiceID
	})).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeUpdated
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, suite.orgID, suite.userID, invoiceID, req)

	suite.Require().NoError(err)
	suite.Equal("Consulting", invoice.Items[0].Name)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_WritesDeletionLog() {
	ctx := context.Background()
	invoiceID := domain.NewID()
	existing := &domain.Invoice{InvoiceID: invoiceID, OrganizationID: suite.orgID, InvoiceNo: "INV-009"}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, suite.orgID, invoiceID).Return(nil).Once()
	suite.mockChangeLogRepo.On("InsertLogs", ctx, mock.MatchedBy(func(logs []domain.EntityChangeLog) bool {
		return len(logs) == 1 && logs[0].ChangeType == domain.ChangeTypeDeleted && logs[0].EntityID == invoiceID
	})).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, suite.orgID, suite.userID, invoiceID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockChangeLogRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := domain.NewID()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.orgID, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, suite.orgID, suite.userID, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoices", ctx, suite.orgID).Return([]domain.Invoice(nil), nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, suite.orgID)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
