package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice of the organization with its items.
	GetInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices lists the invoices of an organization without items.
	ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// CreateInvoice runs the full document validation pipeline and persists
	// the invoice with its items. All reported violations are returned
	// together wrapped in a validation error.
	CreateInvoice(ctx context.Context, organizationID, userID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice revalidates the request against the stored invoice,
	// applies changed fields, replaces items when they differ and records
	// change logs. A request that changes nothing performs no writes.
	UpdateInvoice(ctx context.Context, organizationID, userID, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, organizationID, userID, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
