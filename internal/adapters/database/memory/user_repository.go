package memory

import (
	"context"
	"strings"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// ListUsers returns copies of all team members in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// FindUserByID returns a copy of the user or ErrNotFound.
func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].UserID == userID {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("User not found")
}

// FindUserByEmail matches case-insensitively.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("User not found")
}

// SaveUser appends a new team member after checking email uniqueness and
// role existence.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.validateUserLocked(user, ""); err != nil {
		return err
	}
	s.users = append(s.users, user)
	return nil
}

// UpdateUser replaces the stored user after checking that the email is not
// taken by a different member and the role exists.
func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].UserID == user.UserID {
			if err := s.validateUserLocked(user, user.UserID); err != nil {
				return err
			}
			s.users[i] = user
			return nil
		}
	}
	return apperrors.NewNotFoundError("User not found")
}

// DeleteUser removes the team member. Task assignee snapshots referencing
// the member are left as-is.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].UserID == userID {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("User not found")
}

// validateUserLocked enforces email uniqueness (case-insensitive) and role
// existence. excludeID skips the user being updated during the email scan.
func (s *Store) validateUserLocked(user domain.User, excludeID string) error {
	for i := range s.users {
		if s.users[i].UserID == excludeID {
			continue
		}
		if strings.EqualFold(s.users[i].Email, user.Email) {
			return apperrors.NewConflictError("A team member with this email already exists")
		}
	}
	if !s.roleExistsLocked(user.RoleID) {
		return apperrors.NewAppError(400, "Invalid role: "+user.RoleID, apperrors.ErrInvalidRole)
	}
	return nil
}

func (s *Store) roleExistsLocked(roleID string) bool {
	for i := range s.roles {
		if s.roles[i].RoleID == roleID {
			return true
		}
	}
	return false
}
