package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/platform/metrics"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	selection   *SelectionTracker
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	selection *SelectionTracker,
	authorizer portssvc.PermissionAuthorizerSvc,
) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Authorizer: authorizer},
		projectRepo: projectRepo,
		selection:   selection,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// ListProjects retrieves projects (optionally scoped to a workspace) and
// reconciles the current project selection against the returned list.
func (s *projectService) ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.reconcileSelection(projects)
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// GetProject retrieves a project by its ID
func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID",
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

// CurrentProject returns the selected project after reconciling the
// selection, or nil when no project remains selectable.
func (s *projectService) CurrentProject(ctx context.Context) (*domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for current selection")
		return nil, err
	}
	s.reconcileSelection(projects)
	selected := s.selection.ProjectID()
	for i := range projects {
		if projects[i].ProjectID == selected {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// CreateProject creates a new project in an existing workspace and selects
// it. Status defaults to not-started when omitted.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, requestingUserID string) (*domain.Project, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageProjects); err != nil {
		return nil, err
	}

	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectNotStarted
	}
	completionRate := 0
	if req.CompletionRate != nil {
		completionRate = *req.CompletionRate
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:      uuid.NewString(),
		WorkspaceID:    req.WorkspaceID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		CompletionRate: completionRate,
		MemberCount:    req.MemberCount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.Deadline != "" {
		deadline, err := time.Parse(time.DateOnly, req.Deadline)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("deadline must be formatted YYYY-MM-DD")
		}
		project.Deadline = &deadline
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project",
			slog.String("project_id", project.ProjectID),
			slog.String("workspace_id", project.WorkspaceID))
		return nil, err
	}

	// A newly created project becomes the current one.
	s.selection.SetProjectID(project.ProjectID)
	metrics.EntityMutations.WithLabelValues("project", "create").Inc()
	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))

	return s.projectRepo.FindProjectByID(ctx, project.ProjectID)
}

// UpdateProject applies the non-nil fields of the update request.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageProjects); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.WorkspaceID != nil {
		project.WorkspaceID = *req.WorkspaceID
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}
	if req.CompletionRate != nil {
		project.CompletionRate = *req.CompletionRate
	}
	if req.MemberCount != nil {
		project.MemberCount = *req.MemberCount
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			project.Deadline = nil
		} else {
			deadline, err := time.Parse(time.DateOnly, *req.Deadline)
			if err != nil {
				return nil, apperrors.NewValidationFailedError("deadline must be formatted YYYY-MM-DD")
			}
			project.Deadline = &deadline
		}
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project",
			slog.String("project_id", projectID))
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("project", "update").Inc()

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

// DeleteProject removes the project (cascading to its tasks) and reconciles
// the selection immediately.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, requestingUserID string) error {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageProjects); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project",
				slog.String("project_id", projectID))
		}
		return err
	}
	metrics.EntityMutations.WithLabelValues("project", "delete").Inc()
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))

	if remaining, err := s.projectRepo.ListProjects(ctx, ""); err == nil {
		s.reconcileSelection(remaining)
	}
	return nil
}

// SelectProject moves the selection pointer to a live project.
func (s *projectService) SelectProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	s.selection.SetProjectID(project.ProjectID)
	return project, nil
}

// reconcileSelection ensures the selected project is present in the given
// list: a stale pointer falls back to the first listed project, or to none.
func (s *projectService) reconcileSelection(projects []domain.Project) {
	selected := s.selection.ProjectID()
	for i := range projects {
		if projects[i].ProjectID == selected {
			return
		}
	}
	if len(projects) > 0 {
		s.selection.SetProjectID(projects[0].ProjectID)
		return
	}
	s.selection.SetProjectID("")
}
