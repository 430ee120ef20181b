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

// taskService implements the TaskSvcFacade interface
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewTaskService creates a new task service with the provided dependencies
func NewTaskService(
	taskRepo portsrepo.TaskRepositoryFacade,
	userRepo portsrepo.UserReader,
	authorizer portssvc.PermissionAuthorizerSvc,
) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: BaseService{Authorizer: authorizer},
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

// ListTasks retrieves tasks matching the query filters.
func (s *taskService) ListTasks(ctx context.Context, params dto.ListTasksParams) ([]domain.Task, error) {
	filter := portsrepo.TaskFilter{
		ProjectID: params.ProjectID,
		Status:    domain.TaskStatus(params.Status),
		Priority:  domain.TaskPriority(params.Priority),
	}
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks",
			slog.String("project_id", params.ProjectID))
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// GetTask retrieves a task by its ID
func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find task by ID",
				slog.String("task_id", taskID))
		}
		return nil, err
	}
	return task, nil
}

// resolveAssignee captures the {id, name} snapshot of the assigned member at
// assignment time. The snapshot is deliberately not refreshed on later
// member renames.
func (s *taskService) resolveAssignee(ctx context.Context, req *dto.TaskAssigneeRequest) (*domain.TaskAssignee, error) {
	if req == nil {
		return nil, nil
	}
	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("assigned team member does not exist")
		}
		return nil, err
	}
	return &domain.TaskAssignee{UserID: user.UserID, Name: user.Name}, nil
}

// CreateTask creates a new task in an existing project. Status defaults to
// pending and priority to medium when omitted.
func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageTasks); err != nil {
		return nil, err
	}

	status := domain.TaskStatus(req.Status)
	if status == "" {
		status = domain.TaskPending
	}
	priority := domain.TaskPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	assignee, err := s.resolveAssignee(ctx, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := domain.Task{
		TaskID:      uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  assignee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(time.DateOnly, req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("dueDate must be formatted YYYY-MM-DD")
		}
		task.DueDate = &dueDate
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task",
			slog.String("task_id", task.TaskID),
			slog.String("project_id", task.ProjectID))
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("task", "create").Inc()
	s.LogInfo(ctx, "Task created", slog.String("task_id", task.TaskID))

	return s.taskRepo.FindTaskByID(ctx, task.TaskID)
}

// UpdateTask applies the non-nil fields of the update request. Assigning a
// member re-captures the name snapshot.
func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageTasks); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			dueDate, err := time.Parse(time.DateOnly, *req.DueDate)
			if err != nil {
				return nil, apperrors.NewValidationFailedError("dueDate must be formatted YYYY-MM-DD")
			}
			task.DueDate = &dueDate
		}
	}
	if req.AssignedTo != nil {
		assignee, err := s.resolveAssignee(ctx, req.AssignedTo)
		if err != nil {
			return nil, err
		}
		task.AssignedTo = assignee
	}
	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = requestingUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task",
			slog.String("task_id", taskID))
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("task", "update").Inc()

	return s.taskRepo.FindTaskByID(ctx, taskID)
}

// DeleteTask removes the task.
func (s *taskService) DeleteTask(ctx context.Context, taskID string, requestingUserID string) error {
	if err := s.Authorize(ctx, requestingUserID, domain.PermManageTasks); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete task",
				slog.String("task_id", taskID))
		}
		return err
	}
	metrics.EntityMutations.WithLabelValues("task", "delete").Inc()
	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID))
	return nil
}
