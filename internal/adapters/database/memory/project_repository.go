package memory

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// ListProjects returns copies of all projects, narrowed to a workspace when
// workspaceID is non-empty.
func (s *Store) ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, 0, len(s.projects))
	for i := range s.projects {
		if workspaceID != "" && s.projects[i].WorkspaceID != workspaceID {
			continue
		}
		out = append(out, cloneProject(s.projects[i]))
	}
	return out, nil
}

// FindProjectByID returns a copy of the project or ErrNotFound.
func (s *Store) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ProjectID == projectID {
			p := cloneProject(s.projects[i])
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Project not found")
}

// SaveProject appends a new project after verifying the owning workspace
// exists.
func (s *Store) SaveProject(ctx context.Context, project domain.Project) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.workspaceExistsLocked(project.WorkspaceID) {
		return apperrors.NewNotFoundError("Workspace not found")
	}
	s.projects = append(s.projects, cloneProject(project))
	s.recountLocked()
	return nil
}

// UpdateProject replaces the stored project. A changed WorkspaceID must
// still reference an existing workspace.
func (s *Store) UpdateProject(ctx context.Context, project domain.Project) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ProjectID == project.ProjectID {
			if !s.workspaceExistsLocked(project.WorkspaceID) {
				return apperrors.NewNotFoundError("Workspace not found")
			}
			s.projects[i] = cloneProject(project)
			s.recountLocked()
			return nil
		}
	}
	return apperrors.NewNotFoundError("Project not found")
}

// DeleteProject removes the project and its tasks in one atomic operation.
func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ProjectID == projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NewNotFoundError("Project not found")
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	s.recountLocked()
	return nil
}

func (s *Store) workspaceExistsLocked(workspaceID string) bool {
	for i := range s.workspaces {
		if s.workspaces[i].WorkspaceID == workspaceID {
			return true
		}
	}
	return false
}
