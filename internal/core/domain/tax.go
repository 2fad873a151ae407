package domain

import "github.com/shopspring/decimal"

// ItemTaxRate describes one entry of the line-item tax rate table.
type ItemTaxRate struct {
	Key         string
	Name        string
	Description string
	Group       string
	Rate        decimal.Decimal
}

// ItemTaxRateKeys lists the supported tax rate codes in display order.
// Changing the tables below is a deploy-time change, not a runtime one.
var ItemTaxRateKeys = []string{
	"NON_TAXABLE",
	"OUT_OF_SCOPE",
	"NON_GST_SUPPLY",
	"GST_0",
	"GST_5",
	"GST_12",
	"GST_18",
	"GST_28",
}

// ItemTaxRates maps a tax rate code to its canonical rate.
var ItemTaxRates = map[string]ItemTaxRate{
	"NON_TAXABLE": {
		Key:  "NON_TAXABLE",
		Name: "Non-Taxable",
		Rate: decimal.Zero,
	},
	"OUT_OF_SCOPE": {
		Key:         "OUT_OF_SCOPE",
		Name:        "Out of Scope",
		Description: "Supplies on which you don't charge any GST or include them in returns",
		Rate:        decimal.Zero,
	},
	"NON_GST_SUPPLY": {
		Key:         "NON_GST_SUPPLY",
		Name:        "Non-GST Supply",
		Description: "Supplies which do not come under GST such as Petroleum products and Liquor",
		Rate:        decimal.Zero,
	},
	"GST_0": {
		Key:   "GST_0",
		Name:  "GST0 [0%]",
		Group: "Tax Group",
		Rate:  decimal.Zero,
	},
	"GST_5": {
		Key:   "GST_5",
		Name:  "GST5 [5%]",
		Group: "Tax Group",
		Rate:  decimal.NewFromInt(5),
	},
	"GST_12": {
		Key:   "GST_12",
		Name:  "GST12 [12%]",
		Group: "Tax Group",
		Rate:  decimal.NewFromInt(12),
	},
	"GST_18": {
		Key:   "GST_18",
		Name:  "GST18 [18%]",
		Group: "Tax Group",
		Rate:  decimal.NewFromInt(18),
	},
	"GST_28": {
		Key:   "GST_28",
		Name:  "GST28 [28%]",
		Group: "Tax Group",
		Rate:  decimal.NewFromInt(28),
	},
}

// Advance tax types. TDS is deducted from the payable total, TCS is collected
// on top of it; the direction is a fixed business rule per type.
const (
	AdvanceTaxTypeTDS = "TDS"
	AdvanceTaxTypeTCS = "TCS"
)

// AdvanceTaxTypes lists the supported advance tax types.
var AdvanceTaxTypes = []string{AdvanceTaxTypeTDS, AdvanceTaxTypeTCS}

// AdvanceTaxSubType describes one selectable advance tax subtype.
type AdvanceTaxSubType struct {
	Key  string
	Name string
	Type string
	Rate decimal.Decimal
}

// AdvanceTaxSubTypes is the static advance tax subtype table.
var AdvanceTaxSubTypes = []AdvanceTaxSubType{
	{
		Key:  "PROFESSIONAL_FEES_10",
		Name: "Professional Fees [10%]",
		Type: AdvanceTaxTypeTDS,
		Rate: decimal.NewFromInt(10),
	},
	{
		Key:  "SALE_OF_GOODS_1",
		Name: "Sale of Goods [1%]",
		Type: AdvanceTaxTypeTCS,
		Rate: decimal.NewFromInt(1),
	},
}

// AdvanceTaxSubTypesFor returns the subtypes belonging to the given type.
func AdvanceTaxSubTypesFor(taxType string) []AdvanceTaxSubType {
	var result []AdvanceTaxSubType
	for _, st := range AdvanceTaxSubTypes {
		if st.Type == taxType {
			result = append(result, st)
		}
	}
	return result
}

// IsValidAdvanceTaxType reports whether taxType is a recognized advance tax type.
func IsValidAdvanceTaxType(taxType string) bool {
	for _, t := range AdvanceTaxTypes {
		if t == taxType {
			return true
		}
	}
	return false
}

// GSTTreatment describes how a client is treated under GST.
type GSTTreatment struct {
	Key         string
	Name        string
	Description string
}

// GST treatment option keys.
const (
	GSTTreatmentRegisteredRegular     = "REGISTERED_BUSINESS_REGULAR"
	GSTTreatmentRegisteredComposition = "REGISTERED_BUSINESS_COMPOSITION"
	GSTTreatmentUnregistered          = "UNREGISTERED_BUSINESS"
	GSTTreatmentConsumer              = "CONSUMER"
	GSTTreatmentOverseas              = "OVERSEAS"
)

// GSTTreatmentOptions maps a treatment key to its display metadata.
var GSTTreatmentOptions = map[string]GSTTreatment{
	GSTTreatmentRegisteredRegular: {
		Key:         GSTTreatmentRegisteredRegular,
		Name:        "Registered Business - Regular",
		Description: "Business that is registered under GST",
	},
	GSTTreatmentRegisteredComposition: {
		Key:         GSTTreatmentRegisteredComposition,
		Name:        "Registered Business - Composition",
		Description: "Business that is registered under composition scheme under GST",
	},
	GSTTreatmentUnregistered: {
		Key:         GSTTreatmentUnregistered,
		Name:        "Unregistered Business",
		Description: "Business that is not registered under GST",
	},
	GSTTreatmentConsumer: {
		Key:         GSTTreatmentConsumer,
		Name:        "Consumer",
		Description: "Consumer who is a regular end customer",
	},
	GSTTreatmentOverseas: {
		Key:         GSTTreatmentOverseas,
		Name:        "Overseas",
		Description: "Customer from outside India",
	},
}
