package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

// The assignee snapshot lives in two nullable columns; rows are scanned by
// hand because the snapshot folds into a nested struct.
var FULL_TASK_SELECT_QUERY = `
SELECT
	t.task_id, t.project_id, t.title, t.description, t.status, t.priority, t.due_date,
	t.assigned_to_id, t.assigned_to_name,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM tasks t
`

func (r *PgxTaskRepository) getTasks(ctx context.Context, filterQuery string, args ...any) ([]domain.Task, error) {
	query := FULL_TASK_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tasks", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var assignedToID, assignedToName *string
		if err := rows.Scan(
			&t.TaskID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate,
			&assignedToID, &assignedToName,
			&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan task row", err)
		}
		if assignedToID != nil {
			t.AssignedTo = &domain.TaskAssignee{UserID: *assignedToID}
			if assignedToName != nil {
				t.AssignedTo.Name = *assignedToName
			}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read task rows", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, filter portsrepo.TaskFilter) ([]domain.Task, error) {
	where := ""
	var args []any
	appendCond := func(column string, value any) {
		if where == "" {
			where = "WHERE "
		} else {
			where += " AND "
		}
		args = append(args, value)
		where += fmt.Sprintf("t.%s = $%d", column, len(args))
	}
	if filter.ProjectID != "" {
		appendCond("project_id", filter.ProjectID)
	}
	if filter.Status != "" {
		appendCond("status", filter.Status)
	}
	if filter.Priority != "" {
		appendCond("priority", filter.Priority)
	}
	return r.getTasks(ctx, where+" ORDER BY t.created_at, t.task_id", args...)
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	tasks, err := r.getTasks(ctx, `WHERE t.task_id = $1`, taskID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, apperrors.NewNotFoundError("Task not found")
	}
	return &tasks[0], nil
}

func assigneeColumns(t domain.Task) (id, name *string) {
	if t.AssignedTo != nil {
		return &t.AssignedTo.UserID, &t.AssignedTo.Name
	}
	return nil, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	assignedToID, assignedToName := assigneeColumns(task)
	query := `
		INSERT INTO tasks (
			task_id, project_id, title, description, status, priority, due_date,
			assigned_to_id, assigned_to_name,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		task.TaskID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		assignedToID,
		assignedToName,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("task ID " + task.TaskID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("Project not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save task "+task.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	assignedToID, assignedToName := assigneeColumns(task)
	query := `
		UPDATE tasks
		SET project_id = $2, title = $3, description = $4, status = $5, priority = $6, due_date = $7,
			assigned_to_id = $8, assigned_to_name = $9, last_updated_at = $10, last_updated_by = $11
		WHERE task_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		task.TaskID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		assignedToID,
		assignedToName,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("Project not found")
		}
		return apperrors.NewAppError(500, "failed to update task "+task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Task not found")
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete task "+taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Task not found")
	}
	return nil
}
