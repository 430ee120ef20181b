package repositories

// RepositoryProvider bundles all repository facades so the composition root
// can hand a single dependency to the service container. Both the in-memory
// store and the PostgreSQL adapter produce one of these.
type RepositoryProvider struct {
	WorkspaceRepo WorkspaceRepositoryFacade
	ProjectRepo   ProjectRepositoryFacade
	TaskRepo      TaskRepositoryFacade
	UserRepo      UserRepositoryFacade
	RoleRepo      RoleRepositoryFacade
}
