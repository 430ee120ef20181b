package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories into a single
// provider for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		TaskRepo:      newPgxTaskRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		RoleRepo:      newPgxRoleRepository(dbPool),
	}
}
