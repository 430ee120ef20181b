package domain

import "time"

// ProjectStatus defines the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not-started"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectOnHold     ProjectStatus = "on-hold"
	ProjectCompleted  ProjectStatus = "completed"
)

// Project is a unit of work within a workspace, containing tasks.
type Project struct {
	ProjectID   string        `json:"projectID" db:"project_id"`     // Primary Key (UUID)
	WorkspaceID string        `json:"workspaceID" db:"workspace_id"` // FK -> workspaces.workspace_id
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Status      ProjectStatus `json:"status" db:"status"`
	// CompletionRate is a 0-100 progress figure maintained by the client.
	CompletionRate int `json:"completionRate" db:"completion_rate"`
	// TaskCount is derived: it always equals the number of tasks whose
	// ProjectID references this project.
	TaskCount   int        `json:"taskCount" db:"task_count"`
	MemberCount int        `json:"memberCount" db:"member_count"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	AuditFields
}
