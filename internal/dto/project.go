package dto

import (
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// --- Project DTOs ---

// CreateProjectRequest defines data for creating a new project. Status
// defaults to not-started and CompletionRate to 0 when omitted.
type CreateProjectRequest struct {
	WorkspaceID    string `json:"workspaceID" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Status         string `json:"status" binding:"omitempty,oneof=not-started in-progress on-hold completed"`
	CompletionRate *int   `json:"completionRate" binding:"omitempty,gte=0,lte=100"`
	MemberCount    int    `json:"memberCount" binding:"omitempty,gte=0"`
	Deadline       string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
type UpdateProjectRequest struct {
	WorkspaceID    *string `json:"workspaceID"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Status         *string `json:"status" binding:"omitempty,oneof=not-started in-progress on-hold completed"`
	CompletionRate *int    `json:"completionRate" binding:"omitempty,gte=0,lte=100"`
	MemberCount    *int    `json:"memberCount" binding:"omitempty,gte=0"`
	Deadline       *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID      string    `json:"id"`
	WorkspaceID    string    `json:"workspaceID"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CompletionRate int       `json:"completionRate"`
	TaskCount      int       `json:"taskCount"`
	MemberCount    int       `json:"memberCount"`
	Deadline       *string   `json:"deadline,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:      p.ProjectID,
		WorkspaceID:    p.WorkspaceID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		CompletionRate: p.CompletionRate,
		TaskCount:      p.TaskCount,
		MemberCount:    p.MemberCount,
		CreatedAt:      p.CreatedAt,
	}
	if p.Deadline != nil {
		d := p.Deadline.Format(time.DateOnly)
		resp.Deadline = &d
	}
	return resp
}

// ListProjectsResponse wraps a list of projects with the current selection.
type ListProjectsResponse struct {
	Projects       []ProjectResponse `json:"projects"`
	CurrentProject *ProjectResponse  `json:"currentProject,omitempty"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(ps []domain.Project, current *domain.Project) ListProjectsResponse {
	list := make([]ProjectResponse, len(ps))
	for i := range ps {
		list[i] = ToProjectResponse(&ps[i])
	}
	resp := ListProjectsResponse{Projects: list}
	if current != nil {
		cur := ToProjectResponse(current)
		resp.CurrentProject = &cur
	}
	return resp
}
