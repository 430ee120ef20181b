package memory

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

// ListTasks returns copies of all tasks matching the filter. Zero-value
// filter fields are ignored.
func (s *Store) ListTasks(ctx context.Context, filter portsrepo.TaskFilter) ([]domain.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, 0, len(s.tasks))
	for i := range s.tasks {
		t := s.tasks[i]
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

// FindTaskByID returns a copy of the task or ErrNotFound.
func (s *Store) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].TaskID == taskID {
			t := cloneTask(s.tasks[i])
			return &t, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Task not found")
}

// SaveTask appends a new task after verifying the owning project exists.
func (s *Store) SaveTask(ctx context.Context, task domain.Task) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.projectExistsLocked(task.ProjectID) {
		return apperrors.NewNotFoundError("Project not found")
	}
	s.tasks = append(s.tasks, cloneTask(task))
	s.recountLocked()
	return nil
}

// UpdateTask replaces the stored task. A changed ProjectID must still
// reference an existing project.
func (s *Store) UpdateTask(ctx context.Context, task domain.Task) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].TaskID == task.TaskID {
			if !s.projectExistsLocked(task.ProjectID) {
				return apperrors.NewNotFoundError("Project not found")
			}
			s.tasks[i] = cloneTask(task)
			s.recountLocked()
			return nil
		}
	}
	return apperrors.NewNotFoundError("Task not found")
}

// DeleteTask removes the task.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].TaskID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.recountLocked()
			return nil
		}
	}
	return apperrors.NewNotFoundError("Task not found")
}

func (s *Store) projectExistsLocked(projectID string) bool {
	for i := range s.projects {
		if s.projects[i].ProjectID == projectID {
			return true
		}
	}
	return false
}
