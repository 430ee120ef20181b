package repositories

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	// ListProjects returns all projects, or only those owned by workspaceID
	// when it is non-empty.
	ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error)
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectWriter defines write operations for projects. SaveProject validates
// the owning workspace exists; DeleteProject cascades to the project's tasks.
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project persistence operations.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
