package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// ChangeLogRepository persists entity change logs.
type ChangeLogRepository struct {
	*Store
}

// NewChangeLogRepository creates a change log repository over the store.
func NewChangeLogRepository(store *Store) *ChangeLogRepository {
	return &ChangeLogRepository{Store: store}
}

var _ portsrepo.ChangeLogRepositoryFacade = (*ChangeLogRepository)(nil)

func (r *ChangeLogRepository) FindLogsByEntity(ctx context.Context, entityName, entityID string) ([]domain.EntityChangeLog, error) {
	query := `
		SELECT change_log_id, entity_name, entity_id, change_type, user_id, organization_id, details, created_at
		FROM entity_change_logs
		WHERE entity_name = $1 AND entity_id = $2
		ORDER BY created_at DESC, change_log_id DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, entityName, entityID)
	if err != nil {
		return nil, mapDBError(err, "failed to query change logs")
	}
	defer rows.Close()

	logs := []domain.EntityChangeLog{}
	for rows.Next() {
		var log domain.EntityChangeLog
		var details []byte
		err := rows.Scan(
			&log.ChangeLogID,
			&log.EntityName,
			&log.EntityID,
			&log.ChangeType,
			&log.UserID,
			&log.OrganizationID,
			&details,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, mapDBError(err, "failed to scan change log row")
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &log.Details); err != nil {
				return nil, fmt.Errorf("failed to decode change log details: %w", err)
			}
		}
		logs = append(logs, log)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating change log rows")
	}
	return logs, nil
}

func (r *ChangeLogRepository) InsertLogs(ctx context.Context, logs []domain.EntityChangeLog) error {
	if len(logs) == 0 {
		return nil
	}
	query := `
		INSERT INTO entity_change_logs (change_log_id, entity_name, entity_id, change_type, user_id, organization_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, log := range logs {
		details, err := json.Marshal(log.Details)
		if err != nil {
			return fmt.Errorf("failed to encode change log details: %w", err)
		}
		_, err = r.db(ctx).Exec(ctx, query,
			log.ChangeLogID,
			log.EntityName,
			log.EntityID,
			log.ChangeType,
			log.UserID,
			log.OrganizationID,
			details,
			log.CreatedAt,
		)
		if err != nil {
			return mapDBError(err, "failed to insert change log")
		}
	}
	return nil
}
