package domain

// Permission is a single capability key checked at action gates.
type Permission string

const (
	PermManageWorkspaces Permission = "manage:workspaces"
	PermManageProjects   Permission = "manage:projects"
	PermManageTasks      Permission = "manage:tasks"
	PermManageTeam       Permission = "manage:team"
	PermViewAnalytics    Permission = "view:analytics"
)

// Role ids are a fixed vocabulary.
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleContributor = "contributor"
	RoleViewer      = "viewer"
)

// Role is a named permission bundle assigned to a team member.
type Role struct {
	RoleID      string       `json:"id" db:"role_id"`
	Label       string       `json:"label" db:"label"`
	Permissions []Permission `json:"permissions" db:"permissions"`
}

// HasPermission reports whether role grants the given permission key. It is
// a total function: a nil role or a role without permissions yields false,
// never an error.
func HasPermission(role *Role, permission Permission) bool {
	if role == nil {
		return false
	}
	for _, p := range role.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// DefaultRoles returns the built-in role set with its permission bundles.
func DefaultRoles() []Role {
	return []Role{
		{
			RoleID: RoleAdmin,
			Label:  "Administrator",
			Permissions: []Permission{
				PermManageWorkspaces,
				PermManageProjects,
				PermManageTasks,
				PermViewAnalytics,
				PermManageTeam,
			},
		},
		{
			RoleID:      RoleManager,
			Label:       "Project Manager",
			Permissions: []Permission{PermManageProjects, PermManageTasks, PermViewAnalytics},
		},
		{
			RoleID:      RoleContributor,
			Label:       "Contributor",
			Permissions: []Permission{PermManageTasks},
		},
		{
			RoleID:      RoleViewer,
			Label:       "Viewer",
			Permissions: []Permission{PermViewAnalytics},
		},
	}
}
