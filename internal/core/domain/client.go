package domain

// Customer types for a client.
const (
	CustomerTypeBusiness   = "BUSINESS"
	CustomerTypeIndividual = "INDIVIDUAL"
)

// CustomerTypes lists the accepted customer type values.
var CustomerTypes = []string{CustomerTypeBusiness, CustomerTypeIndividual}

// Address is an embedded postal address. All fields are optional; an address
// with every field nil is treated as absent.
type Address struct {
	AddressLine1 *string `json:"addressLine1,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	PinCode      *string `json:"pinCode,omitempty"`
}

// IsEmpty reports whether no field of the address is set.
func (a Address) IsEmpty() bool {
	return a.AddressLine1 == nil && a.AddressLine2 == nil && a.City == nil &&
		a.State == nil && a.Country == nil && a.PinCode == nil
}

// Client is a customer of an organization. Names are unique per organization,
// compared case-insensitively.
type Client struct {
	ClientID          string  `json:"clientId"`
	OrganizationID    string  `json:"organizationId"`
	Name              string  `json:"name"`
	CustomerType      string  `json:"customerType"`
	Email             *string `json:"email,omitempty"`
	MobileCountryCode *string `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string `json:"mobileNumber,omitempty"`
	PAN               *string `json:"pan,omitempty"`
	GSTIN             *string `json:"gstin,omitempty"`
	GSTTreatment      *string `json:"gstTreatment,omitempty"`
	BillingAddress    Address `json:"billingAddress"`
	ShippingAddress   Address `json:"shippingAddress"`
	Timestamps

	ContactPersons []ClientContactPerson `json:"contactPersons,omitempty"`
}

// ClientContactPerson is an additional contact attached to a client.
type ClientContactPerson struct {
	ContactPersonID   string  `json:"contactPersonId"`
	ClientID          string  `json:"clientId"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	MobileCountryCode *string `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string `json:"mobileNumber,omitempty"`
	Timestamps
}
