package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspaces.
type WorkspaceReaderSvc interface {
	// ListWorkspaces returns all workspaces and reconciles the current
	// selection against the live list.
	ListWorkspaces(ctx context.Context, requestingUserID string) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	// CurrentWorkspace returns the selected workspace, or nil when none
	// remains selectable.
	CurrentWorkspace(ctx context.Context) (*domain.Workspace, error)
}

// WorkspaceWriterSvc defines write operations for workspaces. All writes are
// gated on the manage:workspaces permission of the requesting user.
type WorkspaceWriterSvc interface {
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error
	// SelectWorkspace moves the current-selection pointer; the target must be
	// a live workspace.
	SelectWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error)
}

// WorkspaceSvcFacade combines all workspace service operations.
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
}
