package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

// ProjectReaderSvc defines read operations for projects.
type ProjectReaderSvc interface {
	// ListProjects returns all projects (optionally scoped to a workspace)
	// and reconciles the current project selection.
	ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	CurrentProject(ctx context.Context) (*domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects, gated on
// manage:projects.
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, requestingUserID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, requestingUserID string) error
	SelectProject(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectSvcFacade combines all project service operations.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
