package dto

import (
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// --- Task DTOs ---

// TaskAssigneeRequest names the team member a task is assigned to. The
// service captures the member's current name as a snapshot on the task.
type TaskAssigneeRequest struct {
	UserID string `json:"id" binding:"required"`
}

// CreateTaskRequest defines data for creating a new task. Status defaults to
// pending and Priority to medium when omitted.
type CreateTaskRequest struct {
	ProjectID   string               `json:"projectID" binding:"required"`
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Status      string               `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority    string               `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssignedTo  *TaskAssigneeRequest `json:"assignedTo"`
}

// UpdateTaskRequest defines the data allowed for updating a task.
// TODO: distinguish an explicit JSON null from an omitted assignedTo so a
// task can be unassigned through this endpoint.
type UpdateTaskRequest struct {
	ProjectID   *string              `json:"projectID"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *string              `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority    *string              `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string              `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssignedTo  *TaskAssigneeRequest `json:"assignedTo"`
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	ProjectID string `form:"projectID"`
	Status    string `form:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority  string `form:"priority" binding:"omitempty,oneof=low medium high"`
}

// TaskAssigneeResponse mirrors the stored assignee snapshot.
type TaskAssigneeResponse struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}

// TaskResponse defines data returned for a task.
type TaskResponse struct {
	TaskID      string                `json:"id"`
	ProjectID   string                `json:"projectID"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      string                `json:"status"`
	Priority    string                `json:"priority"`
	DueDate     *string               `json:"dueDate,omitempty"`
	AssignedTo  *TaskAssigneeResponse `json:"assignedTo,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		TaskID:      t.TaskID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != nil {
		d := t.DueDate.Format(time.DateOnly)
		resp.DueDate = &d
	}
	if t.AssignedTo != nil {
		resp.AssignedTo = &TaskAssigneeResponse{UserID: t.AssignedTo.UserID, Name: t.AssignedTo.Name}
	}
	return resp
}

// ListTasksResponse wraps the list of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToListTasksResponse converts a slice of domain.Task to DTO.
func ToListTasksResponse(ts []domain.Task) ListTasksResponse {
	list := make([]TaskResponse, len(ts))
	for i := range ts {
		list[i] = ToTaskResponse(&ts[i])
	}
	return ListTasksResponse{Tasks: list}
}
