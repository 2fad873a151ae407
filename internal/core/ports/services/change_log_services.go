package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ChangeLogSvcFacade defines read access to entity change logs.
type ChangeLogSvcFacade interface {
	// ListEntityChangeLogs lists change log entries for one entity of the
	// organization, newest first.
	ListEntityChangeLogs(ctx context.Context, organizationID, entityName, entityID string) ([]domain.EntityChangeLog, error)
}
