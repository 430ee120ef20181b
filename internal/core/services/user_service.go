package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/platform/metrics"
	"github.com/teamboardhq/team_board_app/internal/utils"
)

const defaultAvatarColor = "bg-blue-500"

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	roleRepo portsrepo.RoleRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	roleRepo portsrepo.RoleRepositoryFacade,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// withRole loads the user's role and returns the joined projection.
func (s *userService) withRole(ctx context.Context, user *domain.User) (*domain.UserWithRole, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, user.RoleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve role for user",
			slog.String("user_id", user.UserID),
			slog.String("role_id", user.RoleID))
		return nil, err
	}
	return &domain.UserWithRole{User: *user, Role: role}, nil
}

// AuthorizePermission checks that the user's role grants the permission key.
func (s *userService) AuthorizePermission(ctx context.Context, userID string, permission domain.Permission) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !domain.HasPermission(profile.Role, permission) {
		s.LogDebug(ctx, "Permission denied",
			slog.String("user_id", userID),
			slog.String("permission", string(permission)))
		return apperrors.NewForbiddenError("You do not have permission to perform this action")
	}
	return nil
}

// GetUserByID retrieves a user by their ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user ⋈ role projection for userID.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.UserWithRole, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withRole(ctx, user)
}

// ListMembers applies the role-scoped visibility rule: contributors see only
// themselves; every other role sees the whole team.
func (s *userService) ListMembers(ctx context.Context, requestingUserID string) ([]domain.UserWithRole, error) {
	requester, err := s.GetProfile(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}

	members := make([]domain.UserWithRole, 0, len(users))
	for i := range users {
		if requester.Role != nil && requester.Role.RoleID == domain.RoleContributor && users[i].UserID != requestingUserID {
			continue
		}
		member, err := s.withRole(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}

// CanEditMember reports whether requester may edit target: admins edit
// anyone, managers edit themselves and contributors, contributors edit only
// themselves, viewers edit nobody.
func (s *userService) CanEditMember(requester *domain.UserWithRole, target *domain.UserWithRole) bool {
	if requester == nil || requester.Role == nil || target == nil {
		return false
	}
	switch requester.Role.RoleID {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		if target.UserID == requester.UserID {
			return true
		}
		return target.Role != nil && target.Role.RoleID == domain.RoleContributor
	case domain.RoleContributor:
		return target.UserID == requester.UserID
	default:
		return false
	}
}

// CreateMember adds a team member. Admins may create members of any role;
// managers may only add contributors.
func (s *userService) CreateMember(ctx context.Context, req dto.CreateTeamMemberRequest, requestingUserID string) (*domain.UserWithRole, error) {
	requester, err := s.GetProfile(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	requesterRole := ""
	if requester.Role != nil {
		requesterRole = requester.Role.RoleID
	}
	switch requesterRole {
	case domain.RoleAdmin:
		// any role
	case domain.RoleManager:
		if req.RoleID != domain.RoleContributor {
			return nil, apperrors.NewForbiddenError("Managers may only add contributors")
		}
	default:
		return nil, apperrors.NewForbiddenError("You do not have permission to add team members")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to process password")
	}

	avatarColor := req.AvatarColor
	if avatarColor == "" {
		avatarColor = defaultAvatarColor
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		RoleID:       req.RoleID,
		AvatarColor:  avatarColor,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrInvalidRole) {
			s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		}
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("user", "create").Inc()
	s.LogInfo(ctx, "Team member created", slog.String("user_id", user.UserID))

	return s.withRole(ctx, &user)
}

// UpdateMember applies the non-nil fields of the update request, gated by
// the edit matrix. Changing a member's role requires admin.
func (s *userService) UpdateMember(ctx context.Context, userID string, req dto.UpdateTeamMemberRequest, requestingUserID string) (*domain.UserWithRole, error) {
	requester, err := s.GetProfile(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	target, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !s.CanEditMember(requester, target) {
		return nil, apperrors.NewForbiddenError("You do not have permission to edit this team member")
	}

	user := target.User
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.RoleID != nil && *req.RoleID != user.RoleID {
		if requester.Role == nil || requester.Role.RoleID != domain.RoleAdmin {
			return nil, apperrors.NewForbiddenError("Only administrators may change roles")
		}
		user.RoleID = *req.RoleID
	}
	if req.AvatarColor != nil {
		user.AvatarColor = *req.AvatarColor
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, apperrors.NewInternalServerError("failed to process password")
		}
		user.PasswordHash = hash
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrInvalidRole) {
			s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		}
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("user", "update").Inc()

	updated, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withRole(ctx, updated)
}

// DeleteMember removes a team member. Only admins may delete, and never
// their own account.
func (s *userService) DeleteMember(ctx context.Context, userID string, requestingUserID string) error {
	requester, err := s.GetProfile(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if requester.Role == nil || requester.Role.RoleID != domain.RoleAdmin {
		return apperrors.NewForbiddenError("Only administrators may remove team members")
	}
	if userID == requestingUserID {
		return apperrors.NewForbiddenError("You cannot remove your own account")
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	metrics.EntityMutations.WithLabelValues("user", "delete").Inc()
	s.LogInfo(ctx, "Team member deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies email (case-insensitive) and password. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.UserWithRole, error) {
	invalidCredentials := apperrors.NewAppError(401, "Invalid email or password", apperrors.ErrInvalidCredentials)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return nil, invalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, invalidCredentials
	}

	profile, err := s.withRole(ctx, user)
	if err != nil {
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.LogInfo(ctx, "User authenticated", slog.String("user_id", user.UserID))
	return profile, nil
}

// CreateOAuthUser finds or provisions a user for an external identity. New
// users are provisioned as contributors.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider) (*domain.UserWithRole, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return s.withRole(ctx, existing)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// External identities carry no local password; an unguessable hash seed
	// keeps the login path closed.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to provision user")
	}
	hash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to provision user")
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		RoleID:       domain.RoleContributor,
		AvatarColor:  defaultAvatarColor,
		PasswordHash: hash,
		AuthProvider: provider,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to provision OAuth user", slog.String("email", email))
		return nil, err
	}
	metrics.EntityMutations.WithLabelValues("user", "create").Inc()
	s.LogInfo(ctx, "OAuth user provisioned", slog.String("user_id", user.UserID))
	return s.withRole(ctx, &user)
}

// EnsureAdminUser provisions a bootstrap administrator when the user table
// is empty. Used on first start against a fresh database.
func (s *userService) EnsureAdminUser(ctx context.Context, email, password string) error {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	if email == "" || password == "" {
		s.LogInfo(ctx, "No users exist and no bootstrap admin configured; skipping")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return apperrors.NewInternalServerError("failed to process bootstrap password")
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		RoleID:       domain.RoleAdmin,
		AvatarColor:  defaultAvatarColor,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to create bootstrap admin")
		return err
	}
	s.LogInfo(ctx, "Bootstrap administrator created", slog.String("user_id", admin.UserID))
	return nil
}
