package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
)

// analyticsService computes the dashboard aggregates from the live
// collections, gated on view:analytics.
type analyticsService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceReader
	projectRepo   portsrepo.ProjectReader
	taskRepo      portsrepo.TaskReader
}

// NewAnalyticsService creates a new analytics service with the provided dependencies
func NewAnalyticsService(
	workspaceRepo portsrepo.WorkspaceReader,
	projectRepo portsrepo.ProjectReader,
	taskRepo portsrepo.TaskReader,
	authorizer portssvc.PermissionAuthorizerSvc,
) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		BaseService:   BaseService{Authorizer: authorizer},
		workspaceRepo: workspaceRepo,
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// Summary aggregates dashboard-wide figures. Averages are computed with
// decimal arithmetic and rounded to two places.
func (s *analyticsService) Summary(ctx context.Context, requestingUserID string) (*domain.AnalyticsSummary, error) {
	if err := s.Authorize(ctx, requestingUserID, domain.PermViewAnalytics); err != nil {
		return nil, err
	}

	workspaces, err := s.workspaceRepo.ListWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for analytics")
		return nil, err
	}
	projects, err := s.projectRepo.ListProjects(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for analytics")
		return nil, err
	}
	tasks, err := s.taskRepo.ListTasks(ctx, portsrepo.TaskFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks for analytics")
		return nil, err
	}

	summary := &domain.AnalyticsSummary{
		WorkspaceCount:   len(workspaces),
		ProjectCount:     len(projects),
		TaskCount:        len(tasks),
		ProjectsByStatus: make(map[domain.ProjectStatus]int),
		TasksByStatus:    make(map[domain.TaskStatus]int),
	}

	totalCompletion := decimal.Zero
	for i := range projects {
		summary.ProjectsByStatus[projects[i].Status]++
		totalCompletion = totalCompletion.Add(decimal.NewFromInt(int64(projects[i].CompletionRate)))
	}
	if len(projects) > 0 {
		summary.AverageCompletionRate = totalCompletion.DivRound(decimal.NewFromInt(int64(len(projects))), 2)
	}

	completedTasks := 0
	for i := range tasks {
		summary.TasksByStatus[tasks[i].Status]++
		if tasks[i].Status == domain.TaskCompleted {
			completedTasks++
		}
	}
	if len(tasks) > 0 {
		summary.TaskCompletionPercent = decimal.NewFromInt(int64(completedTasks)).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(int64(len(tasks))), 2)
	}

	summary.Workspaces = make([]domain.WorkspaceAnalytics, 0, len(workspaces))
	for i := range workspaces {
		ws := domain.WorkspaceAnalytics{
			WorkspaceID: workspaces[i].WorkspaceID,
			Name:        workspaces[i].Name,
		}
		wsCompletion := decimal.Zero
		for j := range projects {
			if projects[j].WorkspaceID != workspaces[i].WorkspaceID {
				continue
			}
			ws.ProjectCount++
			ws.TaskCount += projects[j].TaskCount
			wsCompletion = wsCompletion.Add(decimal.NewFromInt(int64(projects[j].CompletionRate)))
		}
		if ws.ProjectCount > 0 {
			ws.AverageCompletionRate = wsCompletion.DivRound(decimal.NewFromInt(int64(ws.ProjectCount)), 2)
		}
		summary.Workspaces = append(summary.Workspaces, ws)
	}

	return summary, nil
}
