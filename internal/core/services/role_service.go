package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
)

// roleService exposes the read-only role catalogue.
type roleService struct {
	BaseService
	roleRepo portsrepo.RoleRepositoryFacade
}

// NewRoleService creates a new role service.
func NewRoleService(roleRepo portsrepo.RoleRepositoryFacade) portssvc.RoleSvcFacade {
	return &roleService{roleRepo: roleRepo}
}

var _ portssvc.RoleSvcFacade = (*roleService)(nil)

func (s *roleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roles")
		return nil, err
	}
	return roles, nil
}

func (s *roleService) GetRole(ctx context.Context, roleID string) (*domain.Role, error) {
	return s.roleRepo.FindRoleByID(ctx, roleID)
}
