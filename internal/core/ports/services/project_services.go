package services

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
	"github.com/saiuttej/books-backend/internal/dto"
)

// ProjectReaderSvc defines read operations for projects.
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project of the organization.
	GetProjectByID(ctx context.Context, organizationID, projectID string) (*domain.Project, error)

	// ListProjects lists the projects of an organization.
	ListProjects(ctx context.Context, organizationID string) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects.
type ProjectWriterSvc interface {
	// CreateProject validates and persists a new project.
	CreateProject(ctx context.Context, organizationID, userID string, req dto.SaveProjectRequest) (*domain.Project, error)

	// UpdateProject applies changed fields to a project and records change
	// logs. A request that changes nothing performs no writes.
	UpdateProject(ctx context.Context, organizationID, userID, projectID string, req dto.SaveProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project.
	DeleteProject(ctx context.Context, organizationID, userID, projectID string) error
}

// ProjectSvcFacade combines all project service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
