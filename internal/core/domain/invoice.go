package domain

import "github.com/shopspring/decimal"

// Invoice is a billed document. Monetary totals are persisted with two decimal
// places and revalidated against the items on every mutation.
type Invoice struct {
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

	TermsAndConditions *string              `json:"termsAndConditions,omitempty"`
	OtherDetails       DocumentOtherDetails `json:"otherDetails"`
	Timestamps

	Items []InvoiceItem `json:"items,omitempty"`
}

// InvoiceItem is one line of an invoice. Lines are ordered by Position.
type InvoiceItem struct {
	InvoiceItemID string `json:"invoiceItemId"`
	InvoiceID     string `json:"invoiceId"`
	Position      int    `json:"position"`

	Name     string  `json:"name"`
	SacNo    *string `json:"sacNo,omitempty"`
	Quantity int     `json:"quantity"`

	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Price        decimal.Decimal `json:"price"`
	TaxRateKey   string          `json:"taxRateKey"`
	TaxRateValue decimal.Decimal `json:"taxRateValue"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}
