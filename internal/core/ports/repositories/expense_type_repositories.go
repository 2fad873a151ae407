package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ExpenseTypeReader defines read operations for expense types.
type ExpenseTypeReader interface {
	// FindExpenseTypeByID retrieves an expense type of the organization.
	FindExpenseTypeByID(ctx context.Context, organizationID, expenseTypeID string) (*domain.ExpenseType, error)

	// FindExpenseTypes lists the expense types of an organization ordered by name.
	FindExpenseTypes(ctx context.Context, organizationID string) ([]domain.ExpenseType, error)

	// NameExists reports whether another expense type of the organization
	// already uses the name, compared case-insensitively. excludeID is
	// skipped, pass "" on create.
	NameExists(ctx context.Context, organizationID, name string, excludeID string) (bool, error)
}

// ExpenseTypeWriter defines write operations for expense types.
type ExpenseTypeWriter interface {
	// SaveExpenseType persists a new expense type.
	SaveExpenseType(ctx context.Context, expenseType domain.ExpenseType) error

	// UpdateExpenseType updates an existing expense type.
	UpdateExpenseType(ctx context.Context, expenseType domain.ExpenseType) error

	// DeleteExpenseType removes an expense type.
	DeleteExpenseType(ctx context.Context, organizationID, expenseTypeID string) error
}

// ExpenseTypeRepositoryFacade combines all expense type repository interfaces.
type ExpenseTypeRepositoryFacade interface {
	ExpenseTypeReader
	ExpenseTypeWriter
}
