package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
)

// changeLogService implements the ChangeLogSvcFacade interface.
type changeLogService struct {
	BaseService
	changeLogRepo portsrepo.ChangeLogRepositoryFacade
}

// NewChangeLogService creates a new change log service with the provided dependencies.
func NewChangeLogService(changeLogRepo portsrepo.ChangeLogRepositoryFacade) portssvc.ChangeLogSvcFacade {
	return &changeLogService{changeLogRepo: changeLogRepo}
}

var _ portssvc.ChangeLogSvcFacade = (*changeLogService)(nil)

func (s *changeLogService) ListEntityChangeLogs(ctx context.Context, organizationID, entityName, entityID string) ([]domain.EntityChangeLog, error) {
	logs, err := s.changeLogRepo.FindLogsByEntity(ctx, entityName, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list change logs")
		return nil, err
	}

	// Logs of other organizations are never exposed, even when the entity ID
	// is guessed.
	filtered := make([]domain.EntityChangeLog, 0, len(logs))
	for _, log := range logs {
		if log.OrganizationID != nil && *log.OrganizationID != organizationID {
			continue
		}
		filtered = append(filtered, log)
	}
	return filtered, nil
}
