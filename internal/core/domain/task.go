package domain

import "time"

// TaskStatus defines the board column a task sits in.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority defines the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskAssignee is a denormalized {id, name} snapshot taken at assignment
// time. It is intentionally not refreshed when the referenced team member is
// renamed later; historical task cards keep the name the member had when the
// task was assigned.
type TaskAssignee struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}

// Task is an atomic work item within a project.
type Task struct {
	TaskID      string        `json:"taskID" db:"task_id"`       // Primary Key (UUID)
	ProjectID   string        `json:"projectID" db:"project_id"` // FK -> projects.project_id
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Status      TaskStatus    `json:"status" db:"status"`
	Priority    TaskPriority  `json:"priority" db:"priority"`
	DueDate     *time.Time    `json:"dueDate,omitempty" db:"due_date"`
	AssignedTo  *TaskAssignee `json:"assignedTo,omitempty" db:"-"`
	AuditFields
}
