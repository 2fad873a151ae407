package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This keeps the service container constructor signature manageable.
type RepositoryProvider struct {
	TxManager       TxManager
	UserRepo        UserRepositoryFacade
	OrgRepo         OrganizationRepositoryFacade
	ClientRepo      ClientRepositoryFacade
	ProjectRepo     ProjectRepositoryFacade
	ExpenseTypeRepo ExpenseTypeRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	QuoteRepo       QuoteRepositoryFacade
	ChangeLogRepo   ChangeLogRepositoryFacade
}
