package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// SaveOrganizationRequest defines data for creating or updating an organization.
type SaveOrganizationRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Subdomain string `json:"subdomain" binding:"required,min=1,max=63"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Subdomain      string    `json:"subdomain"`
	CreatedByID    string    `json:"createdById"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		Subdomain:      o.Subdomain,
		CreatedByID:    o.CreatedByID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ListOrganizationsResponse wraps a list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToListOrganizationsResponse converts a slice of domain.Organization to DTO.
func ToListOrganizationsResponse(orgs []domain.Organization) ListOrganizationsResponse {
	list := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		list[i] = ToOrganizationResponse(&orgs[i])
	}
	return ListOrganizationsResponse{Organizations: list}
}
