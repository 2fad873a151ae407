package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// SaveProjectRequest defines data for creating or updating a project.
type SaveProjectRequest struct {
	Code        string  `json:"code" binding:"required,min=2,max=10"`
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	ClientID    *string `json:"clientId"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID      string    `json:"projectId"`
	OrganizationID string    `json:"organizationId"`
	ClientID       *string   `json:"clientId,omitempty"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToProjectResponse converts a domain.Project to its response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		OrganizationID: p.OrganizationID,
		ClientID:       p.ClientID,
		Code:           p.Code,
		Name:           p.Name,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	list := make([]ProjectResponse, len(projects))
	for i := range projects {
		list[i] = ToProjectResponse(&projects[i])
	}
	return ListProjectsResponse{Projects: list}
}
