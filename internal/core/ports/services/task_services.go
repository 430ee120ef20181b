package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

// TaskReaderSvc defines read operations for tasks.
type TaskReaderSvc interface {
	ListTasks(ctx context.Context, params dto.ListTasksParams) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
}

// TaskWriterSvc defines write operations for tasks, gated on manage:tasks.
type TaskWriterSvc interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string, requestingUserID string) error
}

// TaskSvcFacade combines all task service operations.
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
