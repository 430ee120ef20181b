package dto

import (
	"github.com/shopspring/decimal"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// WorkspaceAnalyticsResponse is the per-workspace rollup.
type WorkspaceAnalyticsResponse struct {
	WorkspaceID           string          `json:"workspaceID"`
	Name                  string          `json:"name"`
	ProjectCount          int             `json:"projectCount"`
	TaskCount             int             `json:"taskCount"`
	AverageCompletionRate decimal.Decimal `json:"averageCompletionRate"`
}

// AnalyticsSummaryResponse is the payload behind the analytics page.
type AnalyticsSummaryResponse struct {
	WorkspaceCount        int                          `json:"workspaceCount"`
	ProjectCount          int                          `json:"projectCount"`
	TaskCount             int                          `json:"taskCount"`
	ProjectsByStatus      map[string]int               `json:"projectsByStatus"`
	TasksByStatus         map[string]int               `json:"tasksByStatus"`
	AverageCompletionRate decimal.Decimal              `json:"averageCompletionRate"`
	TaskCompletionPercent decimal.Decimal              `json:"taskCompletionPercent"`
	Workspaces            []WorkspaceAnalyticsResponse `json:"workspaces"`
}

// ToAnalyticsSummaryResponse converts the domain summary to DTO.
func ToAnalyticsSummaryResponse(s *domain.AnalyticsSummary) AnalyticsSummaryResponse {
	projects := make(map[string]int, len(s.ProjectsByStatus))
	for status, n := range s.ProjectsByStatus {
		projects[string(status)] = n
	}
	tasks := make(map[string]int, len(s.TasksByStatus))
	for status, n := range s.TasksByStatus {
		tasks[string(status)] = n
	}
	workspaces := make([]WorkspaceAnalyticsResponse, len(s.Workspaces))
	for i, w := range s.Workspaces {
		workspaces[i] = WorkspaceAnalyticsResponse{
			WorkspaceID:           w.WorkspaceID,
			Name:                  w.Name,
			ProjectCount:          w.ProjectCount,
			TaskCount:             w.TaskCount,
			AverageCompletionRate: w.AverageCompletionRate,
		}
	}
	return AnalyticsSummaryResponse{
		WorkspaceCount:        s.WorkspaceCount,
		ProjectCount:          s.ProjectCount,
		TaskCount:             s.TaskCount,
		ProjectsByStatus:      projects,
		TasksByStatus:         tasks,
		AverageCompletionRate: s.AverageCompletionRate,
		TaskCompletionPercent: s.TaskCompletionPercent,
		Workspaces:            workspaces,
	}
}
