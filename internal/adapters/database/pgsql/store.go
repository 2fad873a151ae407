package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saiuttej/books-backend/internal/apperrors"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx,
// so repository methods work the same inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKey struct{}

// Store wraps the connection pool and implements transaction management.
// Entity repositories embed it to resolve their querier from the context.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over an established connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var _ portsrepo.TxManager = (*Store)(nil)

// db returns the transaction carried in ctx, or the pool when none is active.
func (s *Store) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// WithinTx runs fn inside a transaction carried through the context. Nested
// calls join the ongoing transaction instead of opening a new one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txCtxKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// NewRepositoryProvider builds the full repository provider over one store.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	store := NewStore(pool)
	return &portsrepo.RepositoryProvider{
		TxManager:       store,
		UserRepo:        NewUserRepository(store),
		OrgRepo:         NewOrganizationRepository(store),
		ClientRepo:      NewClientRepository(store),
		ProjectRepo:     NewProjectRepository(store),
		ExpenseTypeRepo: NewExpenseTypeRepository(store),
		InvoiceRepo:     NewInvoiceRepository(store),
		QuoteRepo:       NewQuoteRepository(store),
		ChangeLogRepo:   NewChangeLogRepository(store),
	}
}

// mapDBError converts driver-level errors to the application error taxonomy.
func mapDBError(err error, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, operation)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
