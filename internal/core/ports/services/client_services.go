package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// ClientReaderSvc defines read operations for clients.
type ClientReaderSvc interface {
	// GetClientByID retrieves a client of the organization with its contact
	// persons.
	GetClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error)

	// ListClients lists the clients of an organization.
	ListClients(ctx context.Context, organizationID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients.
type ClientWriterSvc interface {
	// CreateClient validates and persists a new client with its contact
	// persons.
	CreateClient(ctx context.Context, organizationID, userID string, req dto.SaveClientRequest) (*domain.Client, error)

	// UpdateClient validates the request, applies changed fields to the
	// client, reconciles its contact persons and records change logs. A
	// request that changes nothing performs no writes.
	UpdateClient(ctx context.Context, organizationID, userID, clientID string, req dto.SaveClientRequest) (*domain.Client, error)

	// DeleteClient removes a client and its contact persons.
	DeleteClient(ctx context.Context, organizationID, userID, clientID string) error
}

// ClientSvcFacade combines all client service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
