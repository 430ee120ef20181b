package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

func memberIDs(members []domain.UserWithRole) []string {
	ids := make([]string, len(members))
	for i := range members {
		ids[i] = members[i].UserID
	}
	return ids
}

func TestListMembersVisibility(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	// Admins and managers see the whole team.
	members, err := c.User.ListMembers(ctx, adminID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{adminID, managerID, contributorID}, memberIDs(members))

	members, err = c.User.ListMembers(ctx, managerID)
	require.NoError(t, err)
	assert.Len(t, members, 3)

	// Contributors see only themselves.
	members, err = c.User.ListMembers(ctx, contributorID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, contributorID, members[0].UserID)
}

func TestCanEditMemberMatrix(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	admin, err := c.User.GetProfile(ctx, adminID)
	require.NoError(t, err)
	manager, err := c.User.GetProfile(ctx, managerID)
	require.NoError(t, err)
	contributor, err := c.User.GetProfile(ctx, contributorID)
	require.NoError(t, err)

	assert.True(t, c.User.CanEditMember(admin, manager))
	assert.True(t, c.User.CanEditMember(admin, admin))

	assert.True(t, c.User.CanEditMember(manager, manager))
	assert.True(t, c.User.CanEditMember(manager, contributor))
	assert.False(t, c.User.CanEditMember(manager, admin))

	assert.True(t, c.User.CanEditMember(contributor, contributor))
	assert.False(t, c.User.CanEditMember(contributor, manager))

	assert.False(t, c.User.CanEditMember(nil, manager))
}

func TestCreateMemberGates(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	// Admins may add any role.
	created, err := c.User.CreateMember(ctx, dto.CreateTeamMemberRequest{
		Name:     "Quinn Patel",
		Email:    "quinn@example.com",
		RoleID:   domain.RoleViewer,
		Password: "password123",
	}, adminID)
	require.NoError(t, err)
	require.NotNil(t, created.Role)
	assert.Equal(t, domain.RoleViewer, created.Role.RoleID)
	assert.Equal(t, "bg-blue-500", created.AvatarColor)

	// Managers may only add contributors.
	_, err = c.User.CreateMember(ctx, dto.CreateTeamMemberRequest{
		Name:     "Shadow Admin",
		Email:    "shadow@example.com",
		RoleID:   domain.RoleAdmin,
		Password: "password123",
	}, managerID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))

	_, err = c.User.CreateMember(ctx, dto.CreateTeamMemberRequest{
		Name:     "New Contributor",
		Email:    "newbie@example.com",
		RoleID:   domain.RoleContributor,
		Password: "password123",
	}, managerID)
	require.NoError(t, err)

	// Contributors may not add anyone.
	_, err = c.User.CreateMember(ctx, dto.CreateTeamMemberRequest{
		Name:     "Friend",
		Email:    "friend@example.com",
		RoleID:   domain.RoleContributor,
		Password: "password123",
	}, contributorID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))
}

func TestCreateMemberRejectsDuplicateEmail(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.User.CreateMember(context.Background(), dto.CreateTeamMemberRequest{
		Name:     "Alex Clone",
		Email:    "ALEX@example.com",
		RoleID:   domain.RoleContributor,
		Password: "password123",
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, 409, apperrors.StatusCode(err))
}

func TestRoleChangeRequiresAdmin(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	newRole := domain.RoleManager
	_, err := c.User.UpdateMember(ctx, contributorID, dto.UpdateTeamMemberRequest{RoleID: &newRole}, managerID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "Only administrators may change roles")

	updated, err := c.User.UpdateMember(ctx, contributorID, dto.UpdateTeamMemberRequest{RoleID: &newRole}, adminID)
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, domain.RoleManager, updated.Role.RoleID)
}

func TestUpdateMemberHonorsEditMatrix(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	name := "Not Allowed"
	_, err := c.User.UpdateMember(ctx, adminID, dto.UpdateTeamMemberRequest{Name: &name}, managerID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))

	name = "Lee W."
	updated, err := c.User.UpdateMember(ctx, contributorID, dto.UpdateTeamMemberRequest{Name: &name}, contributorID)
	require.NoError(t, err)
	assert.Equal(t, "Lee W.", updated.Name)
}

func TestDeleteMemberRules(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	// Only admins may delete.
	err := c.User.DeleteMember(ctx, contributorID, managerID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))

	// Never the own account.
	err = c.User.DeleteMember(ctx, adminID, adminID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You cannot remove your own account")

	require.NoError(t, c.User.DeleteMember(ctx, contributorID, adminID))
	_, err = c.User.GetUserByID(ctx, contributorID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusCode(err))
}

func TestAuthenticateUser(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	profile, err := c.User.AuthenticateUser(ctx, "Alex@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, adminID, profile.UserID)
	require.NotNil(t, profile.Role)
	assert.Equal(t, domain.RoleAdmin, profile.Role.RoleID)

	// Wrong password and unknown email are indistinguishable.
	_, err = c.User.AuthenticateUser(ctx, "alex@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "Invalid email or password")

	_, err = c.User.AuthenticateUser(ctx, "nobody@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestCreateOAuthUserProvisionsContributor(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	profile, err := c.User.CreateOAuthUser(ctx, "Sam Oak", "sam@example.com", domain.ProviderGoogle)
	require.NoError(t, err)
	require.NotNil(t, profile.Role)
	assert.Equal(t, domain.RoleContributor, profile.Role.RoleID)

	// A second sign-in resolves to the same account.
	again, err := c.User.CreateOAuthUser(ctx, "Sam Oak", "sam@example.com", domain.ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, again.UserID)
}
