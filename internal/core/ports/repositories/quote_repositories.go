package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// QuoteReader defines read operations for quotes.
type QuoteReader interface {
	// FindQuoteByID retrieves a quote of the organization with its items
	// loaded in position order.
	FindQuoteByID(ctx context.Context, organizationID, quoteID string) (*domain.Quote, error)

	// FindQuotes lists the quotes of an organization ordered by creation time
	// descending. Items are not loaded.
	FindQuotes(ctx context.Context, organizationID string) ([]domain.Quote, error)

	// QuoteNoExists reports whether another quote of the organization already
	// uses the number. excludeQuoteID is skipped, pass "" on create.
	QuoteNoExists(ctx context.Context, organizationID, quoteNo string, excludeQuoteID string) (bool, error)
}

// QuoteWriter defines write operations for quotes.
type QuoteWriter interface {
	// SaveQuote persists a new quote along with its items.
	SaveQuote(ctx context.Context, quote domain.Quote) error

	// UpdateQuote updates a quote and replaces its items.
	UpdateQuote(ctx context.Context, quote domain.Quote) error

	// DeleteQuote removes a quote and its items.
	DeleteQuote(ctx context.Context, organizationID, quoteID string) error
}

// QuoteRepositoryFacade combines all quote repository interfaces.
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
