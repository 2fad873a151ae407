package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// ExpenseTypeReaderSvc defines read operations for expense types.
type ExpenseTypeReaderSvc interface {
	// GetExpenseTypeByID retrieves an expense type of the organization.
	GetExpenseTypeByID(ctx context.Context, organizationID, expenseTypeID string) (*domain.ExpenseType, error)

	// ListExpenseTypes lists the expense types of an organization.
	ListExpenseTypes(ctx context.Context, organizationID string) ([]domain.ExpenseType, error)
}

// ExpenseTypeWriterSvc defines write operations for expense types.
type ExpenseTypeWriterSvc interface {
	// CreateExpenseType validates and persists a new expense type.
	CreateExpenseType(ctx context.Context, organizationID, userID string, req dto.SaveExpenseTypeRequest) (*domain.ExpenseType, error)

	// UpdateExpenseType applies changed fields to an expense type and records
	// change logs. A request that changes nothing performs no writes.
	UpdateExpenseType(ctx context.Context, organizationID, userID, expenseTypeID string, req dto.SaveExpenseTypeRequest) (*domain.ExpenseType, error)

	// DeleteExpenseType removes an expense type.
	DeleteExpenseType(ctx context.Context, organizationID, userID, expenseTypeID string) error
}

// ExpenseTypeSvcFacade combines all expense type service interfaces.
type ExpenseTypeSvcFacade interface {
	ExpenseTypeReaderSvc
	ExpenseTypeWriterSvc
}
