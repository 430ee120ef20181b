package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

// roleHandler serves the read-only role catalogue.
type roleHandler struct {
	roleService portssvc.RoleSvcFacade
}

func newRoleHandler(rs portssvc.RoleSvcFacade) *roleHandler {
	return &roleHandler{roleService: rs}
}

// registerRoleRoutes registers the role catalogue routes.
func registerRoleRoutes(rg *gin.RouterGroup, roleService portssvc.RoleSvcFacade) {
	h := newRoleHandler(roleService)
	rg.GET("/roles", h.listRoles)
}

// listRoles godoc
// @Summary List roles
// @Description Lists the built-in roles with their permission bundles
// @Tags roles
// @Produce json
// @Success 200 {object} dto.ListRolesResponse
// @Security BearerAuth
// @Router /roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRolesResponse(roles))
}
