package pgsql

import (
	"context"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// ExpenseTypeRepository persists expense types.
type ExpenseTypeRepository struct {
	*Store
}

// NewExpenseTypeRepository creates an expense type repository over the store.
func NewExpenseTypeRepository(store *Store) *ExpenseTypeRepository {
	return &ExpenseTypeRepository{Store: store}
}

var _ portsrepo.ExpenseTypeRepositoryFacade = (*ExpenseTypeRepository)(nil)

const expenseTypeColumns = `expense_type_id, organization_id, name, description, created_at, updated_at`

func scanExpenseType(row interface{ Scan(dest ...any) error }) (*domain.ExpenseType, error) {
	var e domain.ExpenseType
	err := row.Scan(
		&e.ExpenseTypeID,
		&e.OrganizationID,
		&e.Name,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseTypeRepository) FindExpenseTypeByID(ctx context.Context, organizationID, expenseTypeID string) (*domain.ExpenseType, error) {
	query := `
		SELECT ` + expenseTypeColumns + `
		FROM expense_types
		WHERE organization_id = $1 AND expense_type_id = $2;
	`
	expenseType, err := scanExpenseType(r.db(ctx).QueryRow(ctx, query, organizationID, expenseTypeID))
	if err != nil {
		return nil, mapDBError(err, "failed to find expense type by ID")
	}
	return expenseType, nil
}

func (r *ExpenseTypeRepository) FindExpenseTypes(ctx context.Context, organizationID string) ([]domain.ExpenseType, error) {
	query := `
		SELECT ` + expenseTypeColumns + `
		FROM expense_types
		WHERE organization_id = $1
		ORDER BY name;
	`
	rows, err := r.db(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapDBError(err, "failed to query expense types")
	}
	defer rows.Close()

	types := []domain.ExpenseType{}
	for rows.Next() {
		expenseType, err := scanExpenseType(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan expense type row")
		}
		types = append(types, *expenseType)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating expense type rows")
	}
	return types, nil
}

func (r *ExpenseTypeRepository) NameExists(ctx context.Context, organizationID, name string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM expense_types
			WHERE organization_id = $1 AND lower(name) = lower($2) AND expense_type_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, name, excludeID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check expense type name")
	}
	return exists, nil
}

func (r *ExpenseTypeRepository) SaveExpenseType(ctx context.Context, expenseType domain.ExpenseType) error {
	query := `
		INSERT INTO expense_types (` + expenseTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		expenseType.ExpenseTypeID,
		expenseType.OrganizationID,
		expenseType.Name,
		expenseType.Description,
		expenseType.CreatedAt,
		expenseType.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save expense type")
	}
	return nil
}

func (r *ExpenseTypeRepository) UpdateExpenseType(ctx context.Context, expenseType domain.ExpenseType) error {
	query := `
		UPDATE expense_types
		SET name = $1, description = $2, updated_at = $3
		WHERE organization_id = $4 AND expense_type_id = $5;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		expenseType.Name,
		expenseType.Description,
		expenseType.UpdatedAt,
		expenseType.OrganizationID,
		expenseType.ExpenseTypeID,
	)
	if err != nil {
		return mapDBError(err, "failed to update expense type")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ExpenseTypeRepository) DeleteExpenseType(ctx context.Context, organizationID, expenseTypeID string) error {
	query := `DELETE FROM expense_types WHERE organization_id = $1 AND expense_type_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, expenseTypeID)
	if err != nil {
		return mapDBError(err, "failed to delete expense type")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
