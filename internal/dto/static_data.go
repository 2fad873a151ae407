package dto

import (
	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// TaxRateOptionResponse defines one entry of the line-item tax rate table.
type TaxRateOptionResponse struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Group       string          `json:"group,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
}

// AdvanceTaxSubTypeResponse defines one advance tax subtype option.
type AdvanceTaxSubTypeResponse struct {
	Key  string          `json:"key"`
	Name string          `json:"name"`
	Type string          `json:"type"`
	Rate decimal.Decimal `json:"rate"`
}

// GSTTreatmentOptionResponse defines one GST treatment option.
type GSTTreatmentOptionResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// StaticDataResponse bundles the static reference tables used by document and
// client forms.
type StaticDataResponse struct {
	TaxRates            []TaxRateOptionResponse      `json:"taxRates"`
	AdvanceTaxTypes     []string                     `json:"advanceTaxTypes"`
	AdvanceTaxSubTypes  []AdvanceTaxSubTypeResponse  `json:"advanceTaxSubTypes"`
	GSTTreatmentOptions []GSTTreatmentOptionResponse `json:"gstTreatmentOptions"`
	CustomerTypes       []string                     `json:"customerTypes"`
}

// ToStaticDataResponse builds the static data response from the domain tables.
func ToStaticDataResponse() StaticDataResponse {
	taxRates := make([]TaxRateOptionResponse, 0, len(domain.ItemTaxRateKeys))
	for _, key := range domain.ItemTaxRateKeys {
		rate := domain.ItemTaxRates[key]
		taxRates = append(taxRates, TaxRateOptionResponse{
			Key:         rate.Key,
			Name:        rate.Name,
			Description: rate.Description,
			Group:       rate.Group,
			Rate:        rate.Rate,
		})
	}

	subTypes := make([]AdvanceTaxSubTypeResponse, 0, len(domain.AdvanceTaxSubTypes))
	for _, st := range domain.AdvanceTaxSubTypes {
		subTypes = append(subTypes, AdvanceTaxSubTypeResponse{
			Key:  st.Key,
			Name: st.Name,
			Type: st.Type,
			Rate: st.Rate,
		})
	}

	treatments := make([]GSTTreatmentOptionResponse, 0, len(domain.GSTTreatmentOptions))
	for _, key := range []string{
		domain.GSTTreatmentRegisteredRegular,
		domain.GSTTreatmentRegisteredComposition,
		domain.GSTTreatmentUnregistered,
		domain.GSTTreatmentConsumer,
		domain.GSTTreatmentOverseas,
	} {
		t := domain.GSTTreatmentOptions[key]
		treatments = append(treatments, GSTTreatmentOptionResponse{
			Key:         t.Key,
			Name:        t.Name,
			Description: t.Description,
		})
	}

	return StaticDataResponse{
		TaxRates:            taxRates,
		AdvanceTaxTypes:     domain.AdvanceTaxTypes,
		AdvanceTaxSubTypes:  subTypes,
		GSTTreatmentOptions: treatments,
		CustomerTypes:       domain.CustomerTypes,
	}
}
