package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleByID(t *testing.T, roleID string) *Role {
	t.Helper()
	for _, r := range DefaultRoles() {
		if r.RoleID == roleID {
			return &r
		}
	}
	t.Fatalf("role %q not in default set", roleID)
	return nil
}

func TestHasPermissionIsTotal(t *testing.T) {
	// A nil role or an unknown key never errors, it just denies.
	assert.False(t, HasPermission(nil, PermManageTasks))
	assert.False(t, HasPermission(&Role{RoleID: "ghost"}, PermManageTasks))
	assert.False(t, HasPermission(roleByID(t, RoleViewer), Permission("manage:everything")))
}

func TestDefaultRolePermissions(t *testing.T) {
	roles := DefaultRoles()
	require.Len(t, roles, 4)

	assert.Equal(t, []Permission{
		PermManageWorkspaces,
		PermManageProjects,
		PermManageTasks,
		PermViewAnalytics,
		PermManageTeam,
	}, roleByID(t, RoleAdmin).Permissions)

	assert.Equal(t, []Permission{PermManageProjects, PermManageTasks, PermViewAnalytics}, roleByID(t, RoleManager).Permissions)
	assert.Equal(t, []Permission{PermManageTasks}, roleByID(t, RoleContributor).Permissions)
	assert.Equal(t, []Permission{PermViewAnalytics}, roleByID(t, RoleViewer).Permissions)
}

func TestRoleBoundaries(t *testing.T) {
	manager := roleByID(t, RoleManager)
	assert.True(t, HasPermission(manager, PermManageProjects))
	assert.False(t, HasPermission(manager, PermManageWorkspaces))
	assert.False(t, HasPermission(manager, PermManageTeam))

	contributor := roleByID(t, RoleContributor)
	assert.True(t, HasPermission(contributor, PermManageTasks))
	assert.False(t, HasPermission(contributor, PermViewAnalytics))

	viewer := roleByID(t, RoleViewer)
	assert.True(t, HasPermission(viewer, PermViewAnalytics))
	assert.False(t, HasPermission(viewer, PermManageTasks))
}
