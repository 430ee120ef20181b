package repositories

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// UserReader defines read operations for team members.
type UserReader interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for team members. SaveUser and
// UpdateUser enforce email uniqueness and role existence at write time.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user persistence operations.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// RoleRepositoryFacade defines persistence operations for roles. The role
// set is seeded and read-only at runtime.
type RoleRepositoryFacade interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
}
