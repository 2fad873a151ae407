package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// fakeTxManager runs the transactional function directly, so tests exercise
// the same code path without a database.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, organizationID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) NameExists(ctx context.Context, organizationID, name string, excludeClientID string) (bool, error) {
	args := m.Called(ctx, organizationID, name, excludeClientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) FindContactPersonsByIDs(ctx context.Context, clientID string, contactPersonIDs []string) ([]domain.ClientContactPerson, error) {
	args := m.Called(ctx, clientID, contactPersonIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientContactPerson), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, organizationID, clientID string) error {
	args := m.Called(ctx, organizationID, clientID)
	return args.Error(0)
}

func (m *MockClientRepository) InsertContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error {
	args := m.Called(ctx, persons)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error {
	args := m.Called(ctx, persons)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteContactPersons(ctx context.Context, clientID string, contactPersonIDs []string) error {
	args := m.Called(ctx, clientID, contactPersonIDs)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, organizationID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, organizationID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context, organizationID string) ([]domain.Project, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) CodeExists(ctx context.Context, organizationID, code string, excludeProjectID string) (bool, error) {
	args := m.Called(ctx, organizationID, code, excludeProjectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, organizationID, projectID string) error {
	args := m.Called(ctx, organizationID, projectID)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, organizationID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) InvoiceNoExists(ctx context.Context, organizationID, invoiceNo string, excludeInvoiceID string) (bool, error) {
	args := m.Called(ctx, organizationID, invoiceNo, excludeInvoiceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, organizationID, invoiceID string) error {
	args := m.Called(ctx, organizationID, invoiceID)
	return args.Error(0)
}

// MockQuoteRepository is a mock type for the QuoteRepositoryFacade interface
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, organizationID, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, organizationID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindQuotes(ctx context.Context, organizationID string) ([]domain.Quote, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) QuoteNoExists(ctx context.Context, organizationID, quoteNo string, excludeQuoteID string) (bool, error) {
	args := m.Called(ctx, organizationID, quoteNo, excludeQuoteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, organizationID, quoteID string) error {
	args := m.Called(ctx, organizationID, quoteID)
	return args.Error(0)
}

// MockChangeLogRepository is a mock type for the ChangeLogRepositoryFacade interface
type MockChangeLogRepository struct {
	mock.Mock
}

func (m *MockChangeLogRepository) FindLogsByEntity(ctx context.Context, entityName, entityID string) ([]domain.EntityChangeLog, error) {
	args := m.Called(ctx, entityName, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityChangeLog), args.Error(1)
}

func (m *MockChangeLogRepository) InsertLogs(ctx context.Context, logs []domain.EntityChangeLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

// MockOrganizationRepository is a mock type for the OrganizationRepositoryFacade interface
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetMembership(ctx context.Context, organizationID, userID string) (*domain.OrganizationUser, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationUser), args.Error(1)
}

func (m *MockOrganizationRepository) NameExists(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) SubdomainExists(ctx context.Context, subdomain string, excludeID string) (bool, error) {
	args := m.Called(ctx, subdomain, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) SaveMembership(ctx context.Context, member domain.OrganizationUser) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// MockExpenseTypeRepository is a mock type for the ExpenseTypeRepositoryFacade interface
type MockExpenseTypeRepository struct {
	mock.Mock
}

func (m *MockExpenseTypeRepository) FindExpenseTypeByID(ctx context.Context, organizationID, expenseTypeID string) (*domain.ExpenseType, error) {
	args := m.Called(ctx, organizationID, expenseTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseType), args.Error(1)
}

func (m *MockExpenseTypeRepository) FindExpenseTypes(ctx context.Context, organizationID string) ([]domain.ExpenseType, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseType), args.Error(1)
}

func (m *MockExpenseTypeRepository) NameExists(ctx context.Context, organizationID, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, organizationID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExpenseTypeRepository) SaveExpenseType(ctx context.Context, expenseType domain.ExpenseType) error {
	args := m.Called(ctx, expenseType)
	return args.Error(0)
}

func (m *MockExpenseTypeRepository) UpdateExpenseType(ctx context.Context, expenseType domain.ExpenseType) error {
	args := m.Called(ctx, expenseType)
	return args.Error(0)
}

func (m *MockExpenseTypeRepository) DeleteExpenseType(ctx context.Context, organizationID, expenseTypeID string) error {
	args := m.Called(ctx, organizationID, expenseTypeID)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}
