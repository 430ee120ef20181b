package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

type PgxRoleRepository struct {
	BaseRepository
}

func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

// Permissions live in a text[] column; rows are scanned by hand to convert
// into the typed permission slice.
func (r *PgxRoleRepository) getRoles(ctx context.Context, filterQuery string, args ...any) ([]domain.Role, error) {
	query := `SELECT r.role_id, r.label, r.permissions FROM roles r ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query roles", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var perms []string
		if err := rows.Scan(&role.RoleID, &role.Label, &perms); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan role row", err)
		}
		role.Permissions = make([]domain.Permission, 0, len(perms))
		for _, p := range perms {
			role.Permissions = append(role.Permissions, domain.Permission(p))
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read role rows", err)
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return roles, nil
}

func (r *PgxRoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return r.getRoles(ctx, `ORDER BY r.role_id`)
}

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	roles, err := r.getRoles(ctx, `WHERE r.role_id = $1`, roleID)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, apperrors.NewAppError(400, "Invalid role: "+roleID, apperrors.ErrInvalidRole)
	}
	return &roles[0], nil
}
