package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// InvoiceRepository persists invoices and their items.
type InvoiceRepository struct {
	*Store
}

// NewInvoiceRepository creates an invoice repository over the store.
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{Store: store}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

const invoiceColumns = `invoice_id, organization_id, client_id, project_id, invoice_no,
		invoice_date, due_date, sub_total, advance_tax_type, advance_tax_sub_type,
		advance_tax_rate, advance_tax_amount, total_amount, terms_and_conditions,
		other_details, created_at, updated_at`

func scanInvoice(row interface{ Scan(dest ...any) error }) (*domain.Invoice, error) {
	var inv domain.Invoice
	var otherDetails []byte
	err := row.Scan(
		&inv.InvoiceID,
		&inv.OrganizationID,
		&inv.ClientID,
		&inv.ProjectID,
		&inv.InvoiceNo,
		&inv.InvoiceDate,
		&inv.DueDate,
		&inv.SubTotal,
		&inv.AdvanceTaxType,
		&inv.AdvanceTaxSubType,
		&inv.AdvanceTaxRate,
		&inv.AdvanceTaxAmount,
		&inv.TotalAmount,
		&inv.TermsAndConditions,
		&otherDetails,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(otherDetails) > 0 {
		if err := json.Unmarshal(otherDetails, &inv.OtherDetails); err != nil {
			return nil, fmt.Errorf("failed to decode invoice other details: %w", err)
		}
	}
	return &inv, nil
}

func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE organization_id = $1 AND invoice_id = $2;
	`
	invoice, err := scanInvoice(r.db(ctx).QueryRow(ctx, query, organizationID, invoiceID))
	if err != nil {
		return nil, mapDBError(err, "failed to find invoice by ID")
	}

	items, err := r.findItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *InvoiceRepository) FindInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE organization_id = $1
		ORDER BY invoice_date DESC, invoice_no DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapDBError(err, "failed to query invoices")
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan invoice row")
		}
		invoices = append(invoices, *invoice)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating invoice rows")
	}
	return invoices, nil
}

func (r *InvoiceRepository) InvoiceNoExists(ctx context.Context, organizationID, invoiceNo string, excludeInvoiceID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE organization_id = $1 AND invoice_no = $2 AND invoice_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, invoiceNo, excludeInvoiceID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check invoice number")
	}
	return exists, nil
}

func (r *InvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	otherDetails, err := json.Marshal(invoice.OtherDetails)
	if err != nil {
		return fmt.Errorf("failed to encode invoice other details: %w", err)
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.db(ctx).Exec(ctx, query,
		invoice.InvoiceID,
		invoice.OrganizationID,
		invoice.ClientID,
		invoice.ProjectID,
		invoice.InvoiceNo,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.SubTotal,
		invoice.AdvanceTaxType,
		invoice.AdvanceTaxSubType,
		invoice.AdvanceTaxRate,
		invoice.AdvanceTaxAmount,
		invoice.TotalAmount,
		invoice.TermsAndConditions,
		otherDetails,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save invoice")
	}
	return r.insertItems(ctx, invoice.Items)
}

func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	otherDetails, err := json.Marshal(invoice.OtherDetails)
	if err != nil {
		return fmt.Errorf("failed to encode invoice other details: %w", err)
	}

	query := `
		UPDATE invoices
		SET client_id = $1, project_id = $2, invoice_no = $3, invoice_date = $4, due_date = $5,
			sub_total = $6, advance_tax_type = $7, advance_tax_sub_type = $8,
			advance_tax_rate = $9, advance_tax_amount = $10, total_amount = $11,
			terms_and_conditions = $12, other_details = $13, updated_at = $14
		WHERE organization_id = $15 AND invoice_id = $16;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		invoice.ClientID,
		invoice.ProjectID,
		invoice.InvoiceNo,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.SubTotal,
		invoice.AdvanceTaxType,
		invoice.AdvanceTaxSubType,
		invoice.AdvanceTaxRate,
		invoice.AdvanceTaxAmount,
		invoice.TotalAmount,
		invoice.TermsAndConditions,
		otherDetails,
		invoice.UpdatedAt,
		invoice.OrganizationID,
		invoice.InvoiceID,
	)
	if err != nil {
		return mapDBError(err, "failed to update invoice")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	deleteItems := `DELETE FROM invoice_items WHERE invoice_id = $1;`
	if _, err := r.db(ctx).Exec(ctx, deleteItems, invoice.InvoiceID); err != nil {
		return mapDBError(err, "failed to replace invoice items")
	}
	return r.insertItems(ctx, invoice.Items)
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, organizationID, invoiceID string) error {
	deleteItems := `
		DELETE FROM invoice_items
		WHERE invoice_id IN (
			SELECT invoice_id FROM invoices WHERE organization_id = $1 AND invoice_id = $2
		);
	`
	if _, err := r.db(ctx).Exec(ctx, deleteItems, organizationID, invoiceID); err != nil {
		return mapDBError(err, "failed to delete invoice items")
	}

	query := `DELETE FROM invoices WHERE organization_id = $1 AND invoice_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, invoiceID)
	if err != nil {
		return mapDBError(err, "failed to delete invoice")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const invoiceItemColumns = `invoice_item_id, invoice_id, position, name, sac_no, quantity,
		unit_price, price, tax_rate_key, tax_rate_value, tax_amount, total_amount`

func (r *InvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.db(ctx).Query(ctx, query, invoiceID)
	if err != nil {
		return nil, mapDBError(err, "failed to query invoice items")
	}
	defer rows.Close()

	items := []domain.InvoiceItem{}
	for rows.Next() {
		var item domain.InvoiceItem
		err := rows.Scan(
			&item.InvoiceItemID,
			&item.InvoiceID,
			&item.Position,
			&item.Name,
			&item.SacNo,
			&item.Quantity,
			&item.UnitPrice,
			&item.Price,
			&item.TaxRateKey,
			&item.TaxRateValue,
			&item.TaxAmount,
			&item.TotalAmount,
		)
		if err != nil {
			return nil, mapDBError(err, "failed to scan invoice item row")
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating invoice item rows")
	}
	return items, nil
}

func (r *InvoiceRepository) insertItems(ctx context.Context, items []domain.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, item := range items {
		_, err := r.db(ctx).Exec(ctx, query,
			item.InvoiceItemID,
			item.InvoiceID,
			item.Position,
			item.Name,
			item.SacNo,
			item.Quantity,
			item.UnitPrice,
			item.Price,
			item.TaxRateKey,
			item.TaxRateValue,
			item.TaxAmount,
			item.TotalAmount,
		)
		if err != nil {
			return mapDBError(err, "failed to insert invoice item")
		}
	}
	return nil
}
