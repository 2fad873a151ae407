package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// expenseTypeService implements the ExpenseTypeSvcFacade interface.
type expenseTypeService struct {
	BaseService
	expenseTypeRepo portsrepo.ExpenseTypeRepositoryFacade
	changeLogRepo   portsrepo.ChangeLogWriter
	txManager       portsrepo.TxManager
}

// NewExpenseTypeService creates a new expense type service with the provided dependencies.
func NewExpenseTypeService(
	expenseTypeRepo portsrepo.ExpenseTypeRepositoryFacade,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.ExpenseTypeSvcFacade {
	return &expenseTypeService{
		expenseTypeRepo: expenseTypeRepo,
		changeLogRepo:   changeLogRepo,
		txManager:       txManager,
	}
}

var _ portssvc.ExpenseTypeSvcFacade = (*expenseTypeService)(nil)

func (s *expenseTypeService) GetExpenseTypeByID(ctx context.Context, organizationID, expenseTypeID string) (*domain.ExpenseType, error) {
	expenseType, err := s.expenseTypeRepo.FindExpenseTypeByID(ctx, organizationID, expenseTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense type by ID", slog.String("expense_type_id", expenseTypeID))
		}
		return nil, err
	}
	return expenseType, nil
}

func (s *expenseTypeService) ListExpenseTypes(ctx context.Context, organizationID string) ([]domain.ExpenseType, error) {
	types, err := s.expenseTypeRepo.FindExpenseTypes(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense types")
		return nil, err
	}
	if types == nil {
		return []domain.ExpenseType{}, nil
	}
	return types, nil
}

func (s *expenseTypeService) CreateExpenseType(ctx context.Context, organizationID, userID string, req dto.SaveExpenseTypeRequest) (*domain.ExpenseType, error) {
	if err := s.checkNameUnique(ctx, organizationID, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	normalizeOptional(&req.Description)
	expenseType := domain.ExpenseType{
		ExpenseTypeID:  domain.NewID(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Description:    req.Description,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	changeLog := newChangeLog(domain.ChangeLogEntityExpenseTypes, expenseType.ExpenseTypeID, domain.ChangeTypeCreated,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Expense type '%s' created", expenseType.Name)},
		})

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.expenseTypeRepo.SaveExpenseType(ctx, expenseType); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense type", slog.String("expense_type_name", expenseType.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Expense type created", slog.String("expense_type_id", expenseType.ExpenseTypeID))
	return &expenseType, nil
}

func (s *expenseTypeService) UpdateExpenseType(ctx context.Context, organizationID, userID, expenseTypeID string, req dto.SaveExpenseTypeRequest) (*domain.ExpenseType, error) {
	expenseType, err := s.expenseTypeRepo.FindExpenseTypeByID(ctx, organizationID, expenseTypeID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(ctx, organizationID, req.Name, expenseTypeID); err != nil {
		return nil, err
	}

	normalizeOptional(&req.Description)
	cs := &changeSet{}
	cs.String("name", "Expense type name", &expenseType.Name, req.Name)
	cs.NullString("description", "Description", &expenseType.Description, req.Description)

	if !cs.HasChanges() {
		s.LogDebug(ctx, "Expense type update is a no-op", slog.String("expense_type_id", expenseTypeID))
		return expenseType, nil
	}

	expenseType.UpdatedAt = time.Now()
	changeLog := newChangeLog(domain.ChangeLogEntityExpenseTypes, expenseType.ExpenseTypeID, domain.ChangeTypeUpdated,
		userID, &organizationID, cs.Details())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.expenseTypeRepo.UpdateExpenseType(ctx, *expenseType); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense type", slog.String("expense_type_id", expenseTypeID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense type updated", slog.String("expense_type_id", expenseTypeID))
	return expenseType, nil
}

func (s *expenseTypeService) DeleteExpenseType(ctx context.Context, organizationID, userID, expenseTypeID string) error {
	expenseType, err := s.expenseTypeRepo.FindExpenseTypeByID(ctx, organizationID, expenseTypeID)
	if err != nil {
		return err
	}

	changeLog := newChangeLog(domain.ChangeLogEntityExpenseTypes, expenseType.ExpenseTypeID, domain.ChangeTypeDeleted,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Expense type '%s' deleted", expenseType.Name)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.expenseTypeRepo.DeleteExpenseType(ctx, organizationID, expenseTypeID); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expense type", slog.String("expense_type_id", expenseTypeID))
		return err
	}

	s.LogInfo(ctx, "Expense type deleted", slog.String("expense_type_id", expenseTypeID))
	return nil
}

func (s *expenseTypeService) checkNameUnique(ctx context.Context, organizationID, name, excludeID string) error {
	exists, err := s.expenseTypeRepo.NameExists(ctx, organizationID, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check expense type name uniqueness: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: there is already an expense type with same name '%s'", apperrors.ErrDuplicate, name)
	}
	return nil
}
