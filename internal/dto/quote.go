package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// QuoteItemResponse defines the data returned for one quote line.
type QuoteItemResponse struct {
	QuoteItemID  string          `json:"quoteItemId"`
	Position     int             `json:"position"`
	Name         string          `json:"name"`
	SacNo        *string         `json:"sacNo,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Price        decimal.Decimal `json:"price"`
	TaxRateKey   string          `json:"taxRateKey"`
	TaxRateValue decimal.Decimal `json:"taxRateValue"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID        string  `json:"quoteId"`
	OrganizationID string  `json:"organizationId"`
	ClientID       string  `json:"clientId"`
	ProjectID      *string `json:"projectId,omitempty"`

	QuoteNo    string  `json:"quoteNo"`
	IssueDate  *string `json:"issueDate,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`

	SubTotal          decimal.Decimal `json:"subTotal"`
	AdvanceTaxType    *string         `json:"advanceTaxType,omitempty"`
	AdvanceTaxSubType *string         `json:"advanceTaxSubType,omitempty"`
	AdvanceTaxRate    decimal.Decimal `json:"advanceTaxRate"`
	AdvanceTaxAmount  decimal.Decimal `json:"advanceTaxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`

	TermsAndConditions *string                         `json:"termsAndConditions,omitempty"`
	ContactPersons     []DocumentContactPersonResponse `json:"contactPersons"`
	Items              []QuoteItemResponse             `json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToQuoteResponse converts a domain.Quote to its response DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuoteItemResponse{
			QuoteItemID:  item.QuoteItemID,
			Position:     item.Position,
			Name:         item.Name,
			SacNo:        item.SacNo,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Price:        item.Price,
			TaxRateKey:   item.TaxRateKey,
			TaxRateValue: item.TaxRateValue,
			TaxAmount:    item.TaxAmount,
			TotalAmount:  item.TotalAmount,
		}
	}
	return QuoteResponse{
		QuoteID:            q.QuoteID,
		OrganizationID:     q.OrganizationID,
		ClientID:           q.ClientID,
		ProjectID:          q.ProjectID,
		QuoteNo:            q.QuoteNo,
		IssueDate:          q.IssueDate,
		ExpiryDate:         q.ExpiryDate,
		SubTotal:           q.SubTotal,
		AdvanceTaxType:     q.AdvanceTaxType,
		AdvanceTaxSubType:  q.AdvanceTaxSubType,
		AdvanceTaxRate:     q.AdvanceTaxRate,
		AdvanceTaxAmount:   q.AdvanceTaxAmount,
		TotalAmount:        q.TotalAmount,
		TermsAndConditions: q.TermsAndConditions,
		ContactPersons:     toDocumentContactPersonResponses(q.OtherDetails.ContactPersons),
		Items:              items,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

// ListQuotesResponse wraps a list of quotes.
type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// ToListQuotesResponse converts a slice of domain.Quote to DTO.
func ToListQuotesResponse(quotes []domain.Quote) ListQuotesResponse {
	list := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		list[i] = ToQuoteResponse(&quotes[i])
	}
	return ListQuotesResponse{Quotes: list}
}
