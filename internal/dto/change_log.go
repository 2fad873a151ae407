package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ChangeLogResponse defines the data returned for one change log entry.
type ChangeLogResponse struct {
	ChangeLogID string                  `json:"changeLogId"`
	EntityName  string                  `json:"entityName"`
	EntityID    string                  `json:"entityId"`
	ChangeType  string                  `json:"changeType"`
	UserID      string                  `json:"userId"`
	Details     domain.ChangeLogDetails `json:"details"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// ToChangeLogResponse converts a domain.EntityChangeLog to its response DTO.
func ToChangeLogResponse(l *domain.EntityChangeLog) ChangeLogResponse {
	return ChangeLogResponse{
		ChangeLogID: l.ChangeLogID,
		EntityName:  l.EntityName,
		EntityID:    l.EntityID,
		ChangeType:  l.ChangeType,
		UserID:      l.UserID,
		Details:     l.Details,
		CreatedAt:   l.CreatedAt,
	}
}

// ListChangeLogsResponse wraps a list of change log entries.
type ListChangeLogsResponse struct {
	ChangeLogs []ChangeLogResponse `json:"changeLogs"`
}

// ToListChangeLogsResponse converts a slice of domain.EntityChangeLog to DTO.
func ToListChangeLogsResponse(logs []domain.EntityChangeLog) ListChangeLogsResponse {
	list := make([]ChangeLogResponse, len(logs))
	for i := range logs {
		list[i] = ToChangeLogResponse(&logs[i])
	}
	return ListChangeLogsResponse{ChangeLogs: list}
}
