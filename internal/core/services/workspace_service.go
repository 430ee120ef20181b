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

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	selection     *SelectionTracker
}

// NewWorkspaceService creates a new workspace service with the provided dependencies
func NewWorkspaceService(
	workspaceRepo portsrepo.WorkspaceRepositoryFacade,
	selection *SelectionTracker,
	authorizer portssvc.PermissionAuthorizerSvc,
) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		BaseService:   BaseService{Authorizer: authorizer},
		workspaceRepo: workspaceRepo,
		selection:     selection,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// ListWorkspaces retrieves all workspaces and reconciles the current
// selection against the live list.
func (s *workspaceService) ListWorkspaces(ctx context.Context, requestingUserID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces")
		return nil, err
	}
	s.reconcileSelection(workspaces)
	if workspaces == nil {
		workspaces = []domain.Workspace{}
	}
	return workspaces, nil
}

// GetWorkspace retrieves a workspace by its ID
func (s *workspaceService) GetWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID",
				slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

// CurrentWorkspace returns the selected workspace after reconciling the
// selection, or nil when no workspace remains selectable.
func (s *workspaceService) CurrentWorkspace(ctx context.Context) (*domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for current selection")
		return nil, err
	}
	s.reconcileSelection(workspaces)
	selected := s.selection.WorkspaceID()
	for i := range workspaces {
		if workspaces[i].WorkspaceID == selected {
			return &workspaces[i], nil
		}
	}
	return nil, nil
}

// CreateWorkspace creates a new workspace and selects it.
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageWorkspaces); err != nil {
		return nil, err
	}

	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		MemberCount: req.MemberCount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	// A newly created workspace becomes the current one.
	s.selection.SetWorkspaceID(workspace.WorkspaceID)
	metrics.EntityMutations.WithLabelValues("workspace", "create").Inc()
	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", workspace.WorkspaceID))

	return s.workspaceRepo.FindWorkspaceByID(ctx, workspace.WorkspaceID)
}

// UpdateWorkspace applies the non-nil fields of the update request.
func (s *workspaceService) UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageWorkspaces); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = *req.Description
	}
	if req.MemberCount != nil {
		workspace.MemberCount = *req.MemberCount
	}
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = requestingUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("workspace", "update").Inc()

	return s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
}

// DeleteWorkspace removes the workspace (cascading to its projects and
// their tasks) and reconciles the selection immediately.
func (s *workspaceService) DeleteWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageWorkspaces); err != nil {
		return err
	}

	if err := s.workspaceRepo.DeleteWorkspace(ctx, workspaceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete workspace",
				slog.String("workspace_id", workspaceID))
		}
		return err
	}
	metrics.EntityMutations.WithLabelValues("workspace", "delete").Inc()
	s.LogInfo(ctx, "Workspace deleted", slog.String("workspace_id", workspaceID))

	if remaining, err := s.workspaceRepo.ListWorkspaces(ctx); err == nil {
		s.reconcileSelection(remaining)
	}
	return nil
}

// SelectWorkspace moves the selection pointer to a live workspace.
func (s *workspaceService) SelectWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	s.selection.SetWorkspaceID(workspace.WorkspaceID)
	return workspace, nil
}

// reconcileSelection ensures the selected workspace still exists: a stale
// pointer falls back to the first remaining workspace, or to none at all.
// An empty selection with workspaces available selects the first one.
func (s *workspaceService) reconcileSelection(workspaces []domain.Workspace) {
	selected := s.selection.WorkspaceID()
	for i := range workspaces {
		if workspaces[i].WorkspaceID == selected {
			return
		}
	}
	if len(workspaces) > 0 {
		s.selection.SetWorkspaceID(workspaces[0].WorkspaceID)
		return
	}
	s.selection.SetWorkspaceID("")
}
