package dto

import "github.com/teamboardhq/team_board_app/internal/core/domain"

// RoleResponse defines data returned for a role.
type RoleResponse struct {
	RoleID      string   `json:"id"`
	Label       string   `json:"label"`
	Permissions []string `json:"permissions"`
}

// ToRoleResponse converts domain.Role to DTO.
func ToRoleResponse(r *domain.Role) RoleResponse {
	perms := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = string(p)
	}
	return RoleResponse{RoleID: r.RoleID, Label: r.Label, Permissions: perms}
}

// ListRolesResponse wraps the role catalogue.
type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// ToListRolesResponse converts a slice of domain.Role to DTO.
func ToListRolesResponse(rs []domain.Role) ListRolesResponse {
	list := make([]RoleResponse, len(rs))
	for i := range rs {
		list[i] = ToRoleResponse(&rs[i])
	}
	return ListRolesResponse{Roles: list}
}
