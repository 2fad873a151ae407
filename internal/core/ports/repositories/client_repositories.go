package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ClientReader defines read operations for clients and their contact persons.
type ClientReader interface {
	// FindClientByID retrieves a client of the organization with its contact
	// persons loaded.
	FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error)

	// FindClients lists the clients of an organization ordered by name.
	FindClients(ctx context.Context, organizationID string) ([]domain.Client, error)

	// NameExists reports whether another client of the organization already
	// uses the name, compared case-insensitively. excludeClientID is skipped,
	// pass "" on create.
	NameExists(ctx context.Context, organizationID, name string, excludeClientID string) (bool, error)

	// FindContactPersonsByIDs retrieves the given contact persons of a client.
	// IDs not belonging to the client are absent from the result.
	FindContactPersonsByIDs(ctx context.Context, clientID string, contactPersonIDs []string) ([]domain.ClientContactPerson, error)
}

// ClientWriter defines write operations for clients and their contact persons.
type ClientWriter interface {
	// SaveClient persists a new client along with its contact persons.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's own fields. Contact persons
	// are managed separately.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client and its contact persons.
	DeleteClient(ctx context.Context, organizationID, clientID string) error

	// InsertContactPersons persists new contact persons for a client.
	InsertContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error

	// UpdateContactPersons updates existing contact persons.
	UpdateContactPersons(ctx context.Context, persons []domain.ClientContactPerson) error

	// DeleteContactPersons removes contact persons of a client by ID.
	DeleteContactPersons(ctx context.Context, clientID string, contactPersonIDs []string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
