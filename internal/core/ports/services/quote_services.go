package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes.
type QuoteReaderSvc interface {
	// GetQuoteByID retrieves a quote of the organization with its items.
	GetQuoteByID(ctx context.Context, organizationID, quoteID string) (*domain.Quote, error)

	// ListQuotes lists the quotes of an organization without items.
	ListQuotes(ctx context.Context, organizationID string) ([]domain.Quote, error)
}

// QuoteWriterSvc defines write operations for quotes.
type QuoteWriterSvc interface {
	// CreateQuote runs the full document validation pipeline and persists the
	// quote with its items.
	CreateQuote(ctx context.Context, organizationID, userID string, req dto.SaveQuoteRequest) (*domain.Quote, error)

	// UpdateQuote revalidates the request against the stored quote, applies
	// changed fields, replaces items when they differ and records change
	// logs. A request that changes nothing performs no writes.
	UpdateQuote(ctx context.Context, organizationID, userID, quoteID string, req dto.SaveQuoteRequest) (*domain.Quote, error)

	// DeleteQuote removes a quote and its items.
	DeleteQuote(ctx context.Context, organizationID, userID, quoteID string) error
}

// QuoteSvcFacade combines all quote service interfaces.
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
