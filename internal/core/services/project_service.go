package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portsrepo "github.com/saiuttej/books-backend/internal/core/ports/repositories"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/utils/validation"
)

// projectService implements the ProjectSvcFacade interface.
type projectService struct {
	BaseService
	projectRepo   portsrepo.ProjectRepositoryFacade
	clientRepo    portsrepo.ClientReader
	changeLogRepo portsrepo.ChangeLogWriter
	txManager     portsrepo.TxManager
}

// NewProjectService creates a new project service with the provided dependencies.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	changeLogRepo portsrepo.ChangeLogWriter,
	txManager portsrepo.TxManager,
) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo:   projectRepo,
		clientRepo:    clientRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProjectByID(ctx context.Context, organizationID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, organizationID, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID", slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, organizationID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.FindProjects(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, organizationID, userID string, req dto.SaveProjectRequest) (*domain.Project, error) {
	if err := s.validateSaveProjectRequest(ctx, organizationID, &req, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:      domain.NewID(),
		OrganizationID: organizationID,
		ClientID:       req.ClientID,
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	changeLog := newChangeLog(domain.ChangeLogEntityProjects, project.ProjectID, domain.ChangeTypeCreated,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Project '%s' created", project.Name)},
		})

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.SaveProject(ctx, project); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create project", slog.String("project_code", project.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, organizationID, userID, projectID string, req dto.SaveProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, organizationID, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.validateSaveProjectRequest(ctx, organizationID, &req, projectID); err != nil {
		return nil, err
	}

	cs := &changeSet{}
	cs.String("code", "Project code", &project.Code, req.Code)
	cs.String("name", "Project name", &project.Name, req.Name)
	cs.NullString("clientId", "Client", &project.ClientID, req.ClientID)
	cs.NullString("description", "Description", &project.Description, req.Description)

	if !cs.HasChanges() {
		s.LogDebug(ctx, "Project update is a no-op", slog.String("project_id", projectID))
		return project, nil
	}

	project.UpdatedAt = time.Now()
	changeLog := newChangeLog(domain.ChangeLogEntityProjects, project.ProjectID, domain.ChangeTypeUpdated,
		userID, &organizationID, cs.Details())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, organizationID, userID, projectID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, organizationID, projectID)
	if err != nil {
		return err
	}

	changeLog := newChangeLog(domain.ChangeLogEntityProjects, project.ProjectID, domain.ChangeTypeDeleted,
		userID, &organizationID, domain.ChangeLogDetails{
			ChangeMessages: []string{fmt.Sprintf("Project '%s' deleted", project.Name)},
		})

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.DeleteProject(ctx, organizationID, projectID); err != nil {
			return err
		}
		return s.changeLogRepo.InsertLogs(ctx, []domain.EntityChangeLog{changeLog})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func (s *projectService) validateSaveProjectRequest(ctx context.Context, organizationID string, req *dto.SaveProjectRequest, excludeProjectID string) error {
	if res := validation.Code(req.Code); !res.IsValid {
		return validationErrorf("Project code is not valid: %s", res.ErrorText())
	}

	codeExists, err := s.projectRepo.CodeExists(ctx, organizationID, req.Code, excludeProjectID)
	if err != nil {
		return fmt.Errorf("failed to check project code uniqueness: %w", err)
	}
	if codeExists {
		return fmt.Errorf("%w: there is already a project with same code '%s'", apperrors.ErrDuplicate, req.Code)
	}

	normalizeOptional(&req.ClientID)
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, organizationID, *req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return validationErrorf("Client not found or is not part of the organization")
			}
			return err
		}
	}

	normalizeOptional(&req.Description)
	return nil
}
