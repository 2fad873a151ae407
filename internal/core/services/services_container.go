package services

import (
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/platform/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Token:        NewTokenService(repos.UserRepo, cfg),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		Organization: NewOrganizationService(repos.OrgRepo, repos.ChangeLogRepo, repos.TxManager),
		Client:       NewClientService(repos.ClientRepo, repos.ChangeLogRepo, repos.TxManager),
		Project:      NewProjectService(repos.ProjectRepo, repos.ClientRepo, repos.ChangeLogRepo, repos.TxManager),
		ExpenseType:  NewExpenseTypeService(repos.ExpenseTypeRepo, repos.ChangeLogRepo, repos.TxManager),
		Invoice:      NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, repos.ProjectRepo, repos.ChangeLogRepo, repos.TxManager),
		Quote:        NewQuoteService(repos.QuoteRepo, repos.ClientRepo, repos.ProjectRepo, repos.ChangeLogRepo, repos.TxManager),
		ChangeLog:    NewChangeLogService(repos.ChangeLogRepo),
	}
}
