package dto

import (
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MemberCount int    `json:"memberCount" binding:"omitempty,gte=0"`
}

// UpdateWorkspaceRequest defines the data allowed for updating a workspace.
// Pointers differentiate omitted fields from zero-value fields; fields not
// present in the update are preserved.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MemberCount *int    `json:"memberCount" binding:"omitempty,gte=0"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID  string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProjectCount int       `json:"projectCount"`
	MemberCount  int       `json:"memberCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:  w.WorkspaceID,
		Name:         w.Name,
		Description:  w.Description,
		ProjectCount: w.ProjectCount,
		MemberCount:  w.MemberCount,
		CreatedAt:    w.CreatedAt,
	}
}

// ListWorkspacesResponse wraps a list of workspaces together with the
// current selection.
type ListWorkspacesResponse struct {
	Workspaces       []WorkspaceResponse `json:"workspaces"`
	CurrentWorkspace *WorkspaceResponse  `json:"currentWorkspace,omitempty"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace, current *domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkspaceResponse(&ws[i])
	}
	resp := ListWorkspacesResponse{Workspaces: list}
	if current != nil {
		cur := ToWorkspaceResponse(current)
		resp.CurrentWorkspace = &cur
	}
	return resp
}
