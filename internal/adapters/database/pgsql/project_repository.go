package pgsql

import (
	"context"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
)

// ProjectRepository persists projects.
type ProjectRepository struct {
	*Store
}

// NewProjectRepository creates a project repository over the store.
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{Store: store}
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

const projectColumns = `project_id, organization_id, client_id, code, name, description, created_at, updated_at`

func scanProject(row interface{ Scan(dest ...any) error }) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.OrganizationID,
		&p.ClientID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) FindProjectByID(ctx context.Context, organizationID, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE organization_id = $1 AND project_id = $2;
	`
	project, err := scanProject(r.db(ctx).QueryRow(ctx, query, organizationID, projectID))
	if err != nil {
		return nil, mapDBError(err, "failed to find project by ID")
	}
	return project, nil
}

func (r *ProjectRepository) FindProjects(ctx context.Context, organizationID string) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE organization_id = $1
		ORDER BY code;
	`
	rows, err := r.db(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapDBError(err, "failed to query projects")
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, mapDBError(err, "failed to scan project row")
		}
		projects = append(projects, *project)
	}
	if rows.Err() != nil {
		return nil, mapDBError(rows.Err(), "error iterating project rows")
	}
	return projects, nil
}

func (r *ProjectRepository) CodeExists(ctx context.Context, organizationID, code string, excludeProjectID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM projects
			WHERE organization_id = $1 AND code = $2 AND project_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, organizationID, code, excludeProjectID).Scan(&exists); err != nil {
		return false, mapDBError(err, "failed to check project code")
	}
	return exists, nil
}

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		project.ProjectID,
		project.OrganizationID,
		project.ClientID,
		project.Code,
		project.Name,
		project.Description,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to save project")
	}
	return nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET client_id = $1, code = $2, name = $3, description = $4, updated_at = $5
		WHERE organization_id = $6 AND project_id = $7;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		project.ClientID,
		project.Code,
		project.Name,
		project.Description,
		project.UpdatedAt,
		project.OrganizationID,
		project.ProjectID,
	)
	if err != nil {
		return mapDBError(err, "failed to update project")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, organizationID, projectID string) error {
	query := `DELETE FROM projects WHERE organization_id = $1 AND project_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, organizationID, projectID)
	if err != nil {
		return mapDBError(err, "failed to delete project")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
