package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice of the organization with its items
	// loaded in position order.
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)

	// FindInvoices lists the invoices of an organization ordered by invoice
	// date descending. Items are not loaded.
	FindInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error)

	// InvoiceNoExists reports whether another invoice of the organization
	// already uses the number. excludeInvoiceID is skipped, pass "" on create.
	InvoiceNoExists(ctx context.Context, organizationID, invoiceNo string, excludeInvoiceID string) (bool, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice along with its items.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an invoice and replaces its items.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, organizationID, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
