package repositories

import (
	"context"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	// FindProjectByID retrieves a project of the organization.
	FindProjectByID(ctx context.Context, organizationID, projectID string) (*domain.Project, error)

	// FindProjects lists the projects of an organization ordered by code.
	FindProjects(ctx context.Context, organizationID string) ([]domain.Project, error)

	// CodeExists reports whether another project of the organization already
	// uses the code. excludeProjectID is skipped, pass "" on create.
	CodeExists(ctx context.Context, organizationID, code string, excludeProjectID string) (bool, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project.
	DeleteProject(ctx context.Context, organizationID, projectID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
