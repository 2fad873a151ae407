package dto

import (
	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// DocumentItemRequest defines one line item of an invoice or quote save
// request. The caller submits the computed amounts and the server revalidates
// every derivation before accepting them.
type DocumentItemRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	SacNo        *string         `json:"sacNo" binding:"omitempty,max=20"`
	Quantity     int             `json:"quantity" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Price        decimal.Decimal `json:"price"`
	TaxRateKey   string          `json:"taxRateKey"`
	TaxRateValue decimal.Decimal `json:"taxRateValue"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// SaveInvoiceRequest defines data for creating or updating an invoice.
type SaveInvoiceRequest struct {
	ClientID  string  `json:"clientId" binding:"required"`
	ProjectID *string `json:"projectId"`

	InvoiceNo   string `json:"invoiceNo" binding:"required"`
	InvoiceDate string `json:"invoiceDate" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`

	Items []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`

	SubTotal          decimal.Decimal `json:"subTotal"`
	AdvanceTaxType    *string         `json:"advanceTaxType"`
	AdvanceTaxSubType *string         `json:"advanceTaxSubType"`
	AdvanceTaxRate    decimal.Decimal `json:"advanceTaxRate"`
	AdvanceTaxAmount  decimal.Decimal `json:"advanceTaxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`

	TermsAndConditions *string  `json:"termsAndConditions" binding:"omitempty,max=5000"`
	ContactPersonIDs   []string `json:"contactPersonIds"`
}

// SaveQuoteRequest defines data for creating or updating a quote. Unlike
// invoices, the issue and expiry dates are optional.
type SaveQuoteRequest struct {
	ClientID  string  `json:"clientId" binding:"required"`
	ProjectID *string `json:"projectId"`

	QuoteNo    string  `json:"quoteNo" binding:"required"`
	IssueDate  *string `json:"issueDate"`
	ExpiryDate *string `json:"expiryDate"`

	Items []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`

	SubTotal          decimal.Decimal `json:"subTotal"`
	AdvanceTaxType    *string         `json:"advanceTaxType"`
	AdvanceTaxSubType *string         `json:"advanceTaxSubType"`
	AdvanceTaxRate    decimal.Decimal `json:"advanceTaxRate"`
	AdvanceTaxAmount  decimal.Decimal `json:"advanceTaxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`

	TermsAndConditions *string  `json:"termsAndConditions" binding:"omitempty,max=5000"`
	ContactPersonIDs   []string `json:"contactPersonIds"`
}

// DocumentContactPersonResponse is the contact person snapshot returned with
// a document.
type DocumentContactPersonResponse struct {
	ContactPersonID   string  `json:"contactPersonId"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	MobileCountryCode *string `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string `json:"mobileNumber,omitempty"`
}

func toDocumentContactPersonResponses(persons []domain.DocumentContactPerson) []DocumentContactPersonResponse {
	list := make([]DocumentContactPersonResponse, len(persons))
	for i, p := range persons {
		list[i] = DocumentContactPersonResponse{
			ContactPersonID:   p.ContactPersonID,
			Name:              p.Name,
			Email:             p.Email,
			MobileCountryCode: p.MobileCountryCode,
			MobileNumber:      p.MobileNumber,
		}
	}
	return list
}
