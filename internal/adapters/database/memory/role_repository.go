package memory

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// ListRoles returns copies of the seeded role catalogue.
func (s *Store) ListRoles(ctx context.Context) ([]domain.Role, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Role, 0, len(s.roles))
	for i := range s.roles {
		out = append(out, cloneRole(s.roles[i]))
	}
	return out, nil
}

// FindRoleByID returns a copy of the role or ErrInvalidRole for unknown ids.
func (s *Store) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.roles {
		if s.roles[i].RoleID == roleID {
			r := cloneRole(s.roles[i])
			return &r, nil
		}
	}
	return nil, apperrors.NewAppError(400, "Invalid role: "+roleID, apperrors.ErrInvalidRole)
}
