package domain

import "github.com/shopspring/decimal"

// Quote is an estimate document. It shares the invoice arithmetic but its
// dates are optional and its number uses the quote sequence.
type Quote struct {
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

	TermsAndConditions *string              `json:"termsAndConditions,omitempty"`
	OtherDetails       DocumentOtherDetails `json:"otherDetails"`
	Timestamps

	Items []QuoteItem `json:"items,omitempty"`
}

// QuoteItem is one line of a quote. Lines are ordered by Position.
type QuoteItem struct {
	QuoteItemID string `json:"quoteItemId"`
	QuoteID     string `json:"quoteId"`
	Position    int    `json:"position"`

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
