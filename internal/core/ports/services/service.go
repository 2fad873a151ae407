package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Organization OrganizationSvcFacade
	Client       ClientSvcFacade
	Project      ProjectSvcFacade
	ExpenseType  ExpenseTypeSvcFacade
	Invoice      InvoiceSvcFacade
	Quote        QuoteSvcFacade
	ChangeLog    ChangeLogSvcFacade
}
