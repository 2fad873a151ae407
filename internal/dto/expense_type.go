package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// SaveExpenseTypeRequest defines data for creating or updating an expense type.
type SaveExpenseTypeRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// ExpenseTypeResponse defines the data returned for an expense type.
type ExpenseTypeResponse struct {
	ExpenseTypeID  string    `json:"expenseTypeId"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToExpenseTypeResponse converts a domain.ExpenseType to its response DTO.
func ToExpenseTypeResponse(e *domain.ExpenseType) ExpenseTypeResponse {
	return ExpenseTypeResponse{
		ExpenseTypeID:  e.ExpenseTypeID,
		OrganizationID: e.OrganizationID,
		Name:           e.Name,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ListExpenseTypesResponse wraps a list of expense types.
type ListExpenseTypesResponse struct {
	ExpenseTypes []ExpenseTypeResponse `json:"expenseTypes"`
}

// ToListExpenseTypesResponse converts a slice of domain.ExpenseType to DTO.
func ToListExpenseTypesResponse(types []domain.ExpenseType) ListExpenseTypesResponse {
	list := make([]ExpenseTypeResponse, len(types))
	for i := range types {
		list[i] = ToExpenseTypeResponse(&types[i])
	}
	return ListExpenseTypesResponse{ExpenseTypes: list}
}
