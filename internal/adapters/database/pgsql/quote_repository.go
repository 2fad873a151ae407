package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// QuoteRepository persists quotes and their items.
type QuoteRepository struct {
	*Store
}

// NewQuoteRepository creates a quote repository over the store.
func NewQuoteRepository(store *Store) *QuoteRepository {
	return &QuoteRepository{Store: store}
}

var _ portsrepo.QuoteRepositoryFacade = (*QuoteRepository)(nil)

const quoteColumns = `quote_id, organization_id, client_id, project_id, quote_no,
		issue_date, expiry_date, sub_total, advance_tax_type, advance_tax_sub_type,
		advance_tax_rate, advance_tax_amount, total_amount, terms_and_conditions,
		other_details, created_at, updated_at`

func scanQuote(row interface{ Scan(dest ...any) error }) (*domain.Quote, error) {
	var q domain.Quote
	var otherDetails []byte
	err := row.Scan(
		&q.QuoteID,
		&q.OrganizationID,
		&q.ClientID,
		&q.ProjectID,
		&q.QuoteNo,
		&q.IssueDate,
		&q.ExpiryDate,
		&q.SubTotal,
		&q.AdvanceTaxType,
		&q.AdvanceTaxSubType,
		&q.AdvanceTaxRate,
		&q.AdvanceTaxAmount,
		&q.TotalAmount,
		&q.TermsAndConditions,
		&otherDetails,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(otherDetails) > 0 {
		if err := json.Unmarshal(otherDetails, &q.OtherDetails); err != nil {
			return nil, fmt.Errorf("failed to decode quote other details: %w", err)
		}
	}
	return &q, nil
}

func (r *QuoteRepository) FindQuoteByID(ctx context.Context, organizationID, quoteID string) (*domain.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE organization_id = $1 AND quote_id = $2;
	`
	quote, err := scanQuote(r.db(ctx).QueryRow(ctx, query, organizationID, quoteID))
	if err != nil {
		return nil, mapDBError(err, "failed to find quote by ID")
	}

	items, err := r.findItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	quote.Items = items
	return quote, nil
}

func (r *QuoteRepository) FindQuotes(ctx context.Context, organizationID string) ([]domain.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE organization_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapDBError(err, "failed to query quotes")
	}
	defer rows.Close()

	quotes := []domain.Quote{}
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan quote row")
		}
		quotes = append(quotes, *quote)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating quote rows")
	}
	return quotes, nil
}

func (r *QuoteRepository) QuoteNoExists(ctx context.Context, organizationID, quoteNo string, excludeQuoteID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM quotes
			WHERE organization_id = $1 AND quote_no = $2 AND quote_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, quoteNo, excludeQuoteID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check quote number")
	}
	return exists, nil
}

func (r *QuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	otherDetails, err := json.Marshal(quote.OtherDetails)
	if err != nil {
		return fmt.Errorf("failed to encode quote other details: %w", err)
	}

	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.db(ctx).Exec(ctx, query,
		quote.QuoteID,
		quote.OrganizationID,
		quote.ClientID,
		quote.ProjectID,
		quote.QuoteNo,
		quote.IssueDate,
		quote.ExpiryDate,
		quote.SubTotal,
		quote.AdvanceTaxType,
		quote.AdvanceTaxSubType,
		quote.AdvanceTaxRate,
		quote.AdvanceTaxAmount,
		quote.TotalAmount,
		quote.TermsAndConditions,
		otherDetails,
		quote.CreatedAt,
		quote.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save quote")
	}
	return r.insertItems(ctx, quote.Items)
}

func (r *QuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	otherDetails, err := json.Marshal(quote.OtherDetails)
	if err != nil {
		return fmt.Errorf("failed to encode quote other details: %w", err)
	}

	query := `
		UPDATE quotes
		SET client_id = $1, project_id = $2, quote_no = $3, issue_date = $4, expiry_date = $5,
			sub_total = $6, advance_tax_type = $7, advance_tax_sub_type = $8,
			advance_tax_rate = $9, advance_tax_amount = $10, total_amount = $11,
			terms_and_conditions = $12, other_details = $13, updated_at = $14
		WHERE organization_id = $15 AND quote_id = $16;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		quote.ClientID,
		quote.ProjectID,
		quote.QuoteNo,
		quote.IssueDate,
		quote.ExpiryDate,
		quote.SubTotal,
		quote.AdvanceTaxType,
		quote.AdvanceTaxSubType,
		quote.AdvanceTaxRate,
		quote.AdvanceTaxAmount,
		quote.TotalAmount,
		quote.TermsAndConditions,
		otherDetails,
		quote.UpdatedAt,
		quote.OrganizationID,
		quote.QuoteID,
	)
	if err != nil {
		return mapDBError(err, "failed to update quote")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	deleteItems := `DELETE FROM quote_items WHERE quote_id = $1;`
	if _, err := r.db(ctx).Exec(ctx, deleteItems, quote.QuoteID); err != nil {
		return mapDBError(err, "failed to replace quote items")
	}
	return r.insertItems(ctx, quote.Items)
}

func (r *QuoteRepository) DeleteQuote(ctx context.Context, organizationID, quoteID string) error {
	deleteItems := `
		DELETE FROM quote_items
		WHERE quote_id IN (
			SELECT quote_id FROM quotes WHERE organization_id = $1 AND quote_id = $2
		);
	`
	if _, err := r.db(ctx).Exec(ctx, deleteItems, organizationID, quoteID); err != nil {
		return mapDBError(err, "failed to delete quote items")
	}

	query := `DELETE FROM quotes WHERE organization_id = $1 AND quote_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, quoteID)
	if err != nil {
		return mapDBError(err, "failed to delete quote")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const quoteItemColumns = `quote_item_id, quote_id, position, name, sac_no, quantity,
		unit_price, price, tax_rate_key, tax_rate_value, tax_amount, total_amount`

func (r *QuoteRepository) findItems(ctx context.Context, quoteID string) ([]domain.QuoteItem, error) {
	query := `
		SELECT ` + quoteItemColumns + `
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY position;
	`
	rows, err := r.db(ctx).Query(ctx, query, quoteID)
	if err != nil {
		return nil, mapDBError(err, "failed to query quote items")
	}
	defer rows.Close()

	items := []domain.QuoteItem{}
	for rows.Next() {
		var item domain.QuoteItem
		err := rows.Scan(
			&item.QuoteItemID,
			&item.QuoteID,
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
			return nil, mapDBError(err, "failed to scan quote item row")
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating quote item rows")
	}
	return items, nil
}

func (r *QuoteRepository) insertItems(ctx context.Context, items []domain.QuoteItem) error {
	query := `
		INSERT INTO quote_items (` + quoteItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, item := range items {
		_, err := r.db(ctx).Exec(ctx, query,
			item.QuoteItemID,
			item.QuoteID,
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
			return mapDBError(err, "failed to insert quote item")
		}
	}
	return nil
}
