package services

import (
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The selection tracker is shared by the workspace and project services
	// so eager reconciliation after deletes sees one consistent state.
	selection := NewSelectionTracker()

	// User service first: it doubles as the permission authorizer for the
	// other services.
	container.User = NewUserService(repos.UserRepo, repos.RoleRepo)
	authorizer := container.User.(portssvc.PermissionAuthorizerSvc)

	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, selection, authorizer)
	container.Project = NewProjectService(repos.ProjectRepo, selection, authorizer)
	container.Task = NewTaskService(repos.TaskRepo, repos.UserRepo, authorizer)
	container.Role = NewRoleService(repos.RoleRepo)
	container.Analytics = NewAnalyticsService(repos.WorkspaceRepo, repos.ProjectRepo, repos.TaskRepo, authorizer)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)
	_ portssvc.ProjectSvcFacade   = (*projectService)(nil)
	_ portssvc.TaskSvcFacade      = (*taskService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
)
