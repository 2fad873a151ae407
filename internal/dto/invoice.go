package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// InvoiceItemResponse defines the data returned for one invoice line.
type InvoiceItemResponse struct {
	InvoiceItemID string          `json:"invoiceItemId"`
	Position      int             `json:"position"`
	Name          string          `json:"name"`
	SacNo         *string         `json:"sacNo,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Price         decimal.Decimal `json:"price"`
	TaxRateKey    string          `json:"taxRateKey"`
	TaxRateValue  decimal.Decimal `json:"taxRateValue"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string  `json:"invoiceId"`
	OrganizationID string  `json:"organizationId"`
	ClientID       string  `json:"clientId"`
	ProjectID      *string `json:"projectId,omitempty"`

	InvoiceNo   string `json:"invoiceNo"`
	InvoiceDate string `json:"invoiceDate"`
	DueDate     string `json:"dueDate"`

	SubTotal          decimal.Decimal `json:"subTotal"`
	AdvanceTaxType    *string         `json:"advanceTaxType,omitempty"`
	AdvanceTaxSubType *string         `json:"advanceTaxSubType,omitempty"`
	AdvanceTaxRate    decimal.Decimal `json:"advanceTaxRate"`
	AdvanceTaxAmount  decimal.Decimal `json:"advanceTaxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`

	TermsAndConditions *string                         `json:"termsAndConditions,omitempty"`
	ContactPersons     []DocumentContactPersonResponse `json:"contactPersons"`
	Items              []InvoiceItemResponse           `json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			InvoiceItemID: item.InvoiceItemID,
			Position:      item.Position,
			Name:          item.Name,
			SacNo:         item.SacNo,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Price:         item.Price,
			TaxRateKey:    item.TaxRateKey,
			TaxRateValue:  item.TaxRateValue,
			TaxAmount:     item.TaxAmount,
			TotalAmount:   item.TotalAmount,
		}
	}
	return InvoiceResponse{
		InvoiceID:          inv.InvoiceID,
		OrganizationID:     inv.OrganizationID,
		ClientID:           inv.ClientID,
		ProjectID:          inv.ProjectID,
		InvoiceNo:          inv.InvoiceNo,
		InvoiceDate:        inv.InvoiceDate,
		DueDate:            inv.DueDate,
		SubTotal:           inv.SubTotal,
		AdvanceTaxType:     inv.AdvanceTaxType,
		AdvanceTaxSubType:  inv.AdvanceTaxSubType,
		AdvanceTaxRate:     inv.AdvanceTaxRate,
		AdvanceTaxAmount:   inv.AdvanceTaxAmount,
		TotalAmount:        inv.TotalAmount,
		TermsAndConditions: inv.TermsAndConditions,
		ContactPersons:     toDocumentContactPersonResponses(inv.OtherDetails.ContactPersons),
		Items:              items,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to DTO.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		list[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: list}
}
