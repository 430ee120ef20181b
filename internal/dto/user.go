package dto

import (
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// --- Team member DTOs ---

// CreateTeamMemberRequest defines data for adding a team member. RoleID must
// reference an existing role; email must be unique across members.
type CreateTeamMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	RoleID      string `json:"roleID" binding:"required"`
	AvatarColor string `json:"avatarColor" binding:"omitempty,avatarcolor"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UpdateTeamMemberRequest defines the data allowed for updating a team
// member. Pointers differentiate omitted fields from zero-value fields.
type UpdateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	RoleID      *string `json:"roleID"`
	AvatarColor *string `json:"avatarColor" binding:"omitempty,avatarcolor"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}

// TeamMemberResponse is the user ⋈ role projection returned to clients. The
// password hash is never serialized.
type TeamMemberResponse struct {
	UserID      string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	AvatarColor string       `json:"avatarColor"`
	Role        RoleResponse `json:"role"`
	CreatedAt   time.Time    `json:"createdAt"`
	CanEdit     bool         `json:"canEdit"`
}

// ToTeamMemberResponse converts a domain.UserWithRole to DTO.
func ToTeamMemberResponse(u *domain.UserWithRole) TeamMemberResponse {
	resp := TeamMemberResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarColor: u.AvatarColor,
		CreatedAt:   u.CreatedAt,
	}
	if u.Role != nil {
		resp.Role = ToRoleResponse(u.Role)
	}
	return resp
}

// ListTeamMembersResponse wraps the visible team members.
type ListTeamMembersResponse struct {
	Members []TeamMemberResponse `json:"members"`
}
