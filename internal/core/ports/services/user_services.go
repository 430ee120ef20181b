package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

// PermissionAuthorizerSvc resolves whether a user may perform an action
// guarded by a permission key. Implementations return
// apperrors.ErrForbidden when the user's role lacks the key.
type PermissionAuthorizerSvc interface {
	AuthorizePermission(ctx context.Context, userID string, permission domain.Permission) error
}

// UserReaderSvc defines read operations for team members.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetProfile returns the user ⋈ role projection for userID.
	GetProfile(ctx context.Context, userID string) (*domain.UserWithRole, error)
	// ListMembers applies the role-scoped visibility rule: admins and
	// managers see everyone, contributors see only themselves.
	ListMembers(ctx context.Context, requestingUserID string) ([]domain.UserWithRole, error)
	// CanEditMember reports whether requester may edit target: admins edit
	// anyone, managers edit themselves and contributors, contributors edit
	// only themselves, viewers edit nobody.
	CanEditMember(requester *domain.UserWithRole, target *domain.UserWithRole) bool
}

// UserWriterSvc defines write operations for team members.
type UserWriterSvc interface {
	CreateMember(ctx context.Context, req dto.CreateTeamMemberRequest, requestingUserID string) (*domain.UserWithRole, error)
	UpdateMember(ctx context.Context, userID string, req dto.UpdateTeamMemberRequest, requestingUserID string) (*domain.UserWithRole, error)
	// DeleteMember is admin-only.
	DeleteMember(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies email (case-insensitive) and password,
	// returning the user ⋈ role projection on success.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.UserWithRole, error)
	// CreateOAuthUser finds or provisions a user for an external identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider) (*domain.UserWithRole, error)
	// EnsureAdminUser provisions a bootstrap administrator when the user
	// table is empty (used by the PostgreSQL adapter on first start).
	EnsureAdminUser(ctx context.Context, email, password string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	PermissionAuthorizerSvc
}
