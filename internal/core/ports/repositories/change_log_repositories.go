package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ChangeLogReader defines read operations for entity change logs.
type ChangeLogReader interface {
	// FindLogsByEntity lists change log entries for one entity, newest first.
	FindLogsByEntity(ctx context.Context, entityName, entityID string) ([]domain.EntityChangeLog, error)
}

// ChangeLogWriter defines write operations for entity change logs.
type ChangeLogWriter interface {
	// InsertLogs persists change log entries. A nil or empty slice is a no-op.
	InsertLogs(ctx context.Context, logs []domain.EntityChangeLog) error
}

// ChangeLogRepositoryFacade combines all change log repository interfaces.
type ChangeLogRepositoryFacade interface {
	ChangeLogReader
	ChangeLogWriter
}
