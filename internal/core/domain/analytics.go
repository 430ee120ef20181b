package domain

import "github.com/shopspring/decimal"

// WorkspaceAnalytics is a per-workspace rollup of project progress.
type WorkspaceAnalytics struct {
	WorkspaceID           string          `json:"workspaceID"`
	Name                  string          `json:"name"`
	ProjectCount          int             `json:"projectCount"`
	TaskCount             int             `json:"taskCount"`
	AverageCompletionRate decimal.Decimal `json:"averageCompletionRate"`
}

// AnalyticsSummary aggregates the dashboard-wide figures behind the
// analytics page.
type AnalyticsSummary struct {
	WorkspaceCount        int                   `json:"workspaceCount"`
	ProjectCount          int                   `json:"projectCount"`
	TaskCount             int                   `json:"taskCount"`
	ProjectsByStatus      map[ProjectStatus]int `json:"projectsByStatus"`
	TasksByStatus         map[TaskStatus]int    `json:"tasksByStatus"`
	AverageCompletionRate decimal.Decimal       `json:"averageCompletionRate"`
	TaskCompletionPercent decimal.Decimal       `json:"taskCompletionPercent"`
	Workspaces            []WorkspaceAnalytics  `json:"workspaces"`
}
