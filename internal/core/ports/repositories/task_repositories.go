package repositories

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// TaskFilter narrows ListTasks results. Zero-value fields are ignored.
type TaskFilter struct {
	ProjectID string
	Status    domain.TaskStatus
	Priority  domain.TaskPriority
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	ListTasks(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
}

// TaskWriter defines write operations for tasks. SaveTask validates the
// owning project exists.
type TaskWriter interface {
	SaveTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task persistence operations.
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
