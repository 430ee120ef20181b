package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/middleware"
)

// teamHandler handles HTTP requests related to team members.
type teamHandler struct {
	userService portssvc.UserSvcFacade
}

// newTeamHandler creates a new teamHandler.
func newTeamHandler(us portssvc.UserSvcFacade) *teamHandler {
	return &teamHandler{
		userService: us,
	}
}

// registerTeamRoutes registers all team-member routes.
func registerTeamRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newTeamHandler(userService)

	team := rg.Group("/team")
	{
		team.GET("", h.listMembers)
		team.POST("", h.createMember)
		team.PUT("/:id", h.updateMember)
		team.DELETE("/:id", h.deleteMember)
	}
}

// listMembers godoc
// @Summary List team members
// @Description Lists the members visible to the requester (contributors see only themselves) with per-member edit flags
// @Tags team
// @Produce json
// @Success 200 {object} dto.ListTeamMembersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /team [get]
func (h *teamHandler) listMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requester, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	members, err := h.userService.ListMembers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListTeamMembersResponse{Members: make([]dto.TeamMemberResponse, 0, len(members))}
	for i := range members {
		member := dto.ToTeamMemberResponse(&members[i])
		member.CanEdit = h.userService.CanEditMember(requester, &members[i])
		resp.Members = append(resp.Members, member)
	}
	c.JSON(http.StatusOK, resp)
}

// createMember godoc
// @Summary Add a team member
// @Description Adds a team member; admins may pick any role, managers only contributors
// @Tags team
// @Accept json
// @Produce json
// @Param member body dto.CreateTeamMemberRequest true "Member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown role"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Email already in use"
// @Security BearerAuth
// @Router /team [post]
func (h *teamHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create member request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.userService.CreateMember(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(member))
}

// updateMember godoc
// @Summary Update a team member
// @Description Applies the provided fields to a member, gated by the edit matrix; role changes require admin
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Email already in use"
// @Security BearerAuth
// @Router /team/{id} [put]
func (h *teamHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update member request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.userService.UpdateMember(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// deleteMember godoc
// @Summary Remove a team member
// @Description Removes a member (admin only, never the requester's own account)
// @Tags team
// @Produce json
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /team/{id} [delete]
func (h *teamHandler) deleteMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.DeleteMember(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
