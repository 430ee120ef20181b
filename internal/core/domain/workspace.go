package domain

// Workspace is the top-level container grouping projects and team members.
type Workspace struct {
	WorkspaceID string `json:"workspaceID" db:"workspace_id"` // Primary Key (UUID)
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	// ProjectCount is derived: it always equals the number of projects whose
	// WorkspaceID references this workspace and is recomputed after every
	// project create/delete.
	ProjectCount int `json:"projectCount" db:"project_count"`
	MemberCount  int `json:"memberCount" db:"member_count"`
	AuditFields
}
