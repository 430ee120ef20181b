package memory

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// ListWorkspaces returns copies of all workspaces in insertion order.
func (s *Store) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workspace, len(s.workspaces))
	copy(out, s.workspaces)
	return out, nil
}

// FindWorkspaceByID returns a copy of the workspace or ErrNotFound.
func (s *Store) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.workspaces {
		if s.workspaces[i].WorkspaceID == workspaceID {
			ws := s.workspaces[i]
			return &ws, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Workspace not found")
}

// SaveWorkspace appends a new workspace.
func (s *Store) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces = append(s.workspaces, workspace)
	s.recountLocked()
	return nil
}

// UpdateWorkspace replaces the stored workspace, preserving the derived
// project count.
func (s *Store) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workspaces {
		if s.workspaces[i].WorkspaceID == workspace.WorkspaceID {
			s.workspaces[i] = workspace
			s.recountLocked()
			return nil
		}
	}
	return apperrors.NewNotFoundError("Workspace not found")
}

// DeleteWorkspace removes the workspace, its projects and the tasks of those
// projects in one atomic operation.
func (s *Store) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.workspaces {
		if s.workspaces[i].WorkspaceID == workspaceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NewNotFoundError("Workspace not found")
	}
	s.workspaces = append(s.workspaces[:idx], s.workspaces[idx+1:]...)

	doomed := make(map[string]bool)
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.WorkspaceID == workspaceID {
			doomed[p.ProjectID] = true
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept

	keptTasks := s.tasks[:0]
	for _, t := range s.tasks {
		if doomed[t.ProjectID] {
			continue
		}
		keptTasks = append(keptTasks, t)
	}
	s.tasks = keptTasks

	s.recountLocked()
	return nil
}
