package repositories

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspaces.
type WorkspaceReader interface {
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspaces.
// DeleteWorkspace cascades: projects owned by the workspace and the tasks
// owned by those projects are removed in the same operation.
type WorkspaceWriter interface {
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// WorkspaceRepositoryFacade combines all workspace persistence operations.
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
