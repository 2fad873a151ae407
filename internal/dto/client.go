package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// AddressRequest defines an optional postal address in save requests.
type AddressRequest struct {
	AddressLine1 *string `json:"addressLine1" binding:"omitempty,max=200"`
	AddressLine2 *string `json:"addressLine2" binding:"omitempty,max=200"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	PinCode      *string `json:"pinCode" binding:"omitempty,max=20"`
}

// ToAddress converts an AddressRequest to its domain value.
func (r AddressRequest) ToAddress() domain.Address {
	return domain.Address{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		PinCode:      r.PinCode,
	}
}

// ContactPersonRequest defines a contact person in a client save request.
// ContactPersonID is set when the caller intends to update an existing person
// and empty for new ones.
type ContactPersonRequest struct {
	ContactPersonID   *string `json:"contactPersonId"`
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	Email             *string `json:"email"`
	MobileCountryCode *string `json:"mobileCountryCode"`
	MobileNumber      *string `json:"mobileNumber"`
}

// SaveClientRequest defines data for creating or updating a client.
type SaveClientRequest struct {
	Name              string                 `json:"name" binding:"required,min=1,max=100"`
	CustomerType      string                 `json:"customerType" binding:"required,oneof=BUSINESS INDIVIDUAL"`
	Email             *string                `json:"email"`
	MobileCountryCode *string                `json:"mobileCountryCode"`
	MobileNumber      *string                `json:"mobileNumber"`
	PAN               *string                `json:"pan"`
	GSTIN             *string                `json:"gstin"`
	GSTTreatment      *string                `json:"gstTreatment"`
	BillingAddress    AddressRequest         `json:"billingAddress"`
	ShippingAddress   AddressRequest         `json:"shippingAddress"`
	ContactPersons    []ContactPersonRequest `json:"contactPersons" binding:"omitempty,dive"`
}

// ContactPersonResponse defines the data returned for a client contact person.
type ContactPersonResponse struct {
	ContactPersonID   string  `json:"contactPersonId"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	MobileCountryCode *string `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string `json:"mobileNumber,omitempty"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID          string                  `json:"clientId"`
	OrganizationID    string                  `json:"organizationId"`
	Name              string                  `json:"name"`
	CustomerType      string                  `json:"customerType"`
	Email             *string                 `json:"email,omitempty"`
	MobileCountryCode *string                 `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string                 `json:"mobileNumber,omitempty"`
	PAN               *string                 `json:"pan,omitempty"`
	GSTIN             *string                 `json:"gstin,omitempty"`
	GSTTreatment      *string                 `json:"gstTreatment,omitempty"`
	BillingAddress    domain.Address          `json:"billingAddress"`
	ShippingAddress   domain.Address          `json:"shippingAddress"`
	ContactPersons    []ContactPersonResponse `json:"contactPersons"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// ToContactPersonResponse converts a domain.ClientContactPerson to its DTO.
func ToContactPersonResponse(p *domain.ClientContactPerson) ContactPersonResponse {
	return ContactPersonResponse{
		ContactPersonID:   p.ContactPersonID,
		Name:              p.Name,
		Email:             p.Email,
		MobileCountryCode: p.MobileCountryCode,
		MobileNumber:      p.MobileNumber,
	}
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	persons := make([]ContactPersonResponse, len(c.ContactPersons))
	for i := range c.ContactPersons {
		persons[i] = ToContactPersonResponse(&c.ContactPersons[i])
	}
	return ClientResponse{
		ClientID:          c.ClientID,
		OrganizationID:    c.OrganizationID,
		Name:              c.Name,
		CustomerType:      c.CustomerType,
		Email:             c.Email,
		MobileCountryCode: c.MobileCountryCode,
		MobileNumber:      c.MobileNumber,
		PAN:               c.PAN,
		GSTIN:             c.GSTIN,
		GSTTreatment:      c.GSTTreatment,
		BillingAddress:    c.BillingAddress,
		ShippingAddress:   c.ShippingAddress,
		ContactPersons:    persons,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ListClientsResponse wraps a list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	list := make([]ClientResponse, len(clients))
	for i := range clients {
		list[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: list}
}
