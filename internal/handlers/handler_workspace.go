package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/middleware"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

// newWorkspaceHandler creates a new workspaceHandler.
func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
	}
}

// registerWorkspaceRoutes registers all workspace-related routes.
func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade) {
	h := newWorkspaceHandler(workspaceService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.GET("", h.listWorkspaces)
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("/current", h.currentWorkspace)
		workspaces.GET("/:id", h.getWorkspace)
		workspaces.PUT("/:id", h.updateWorkspace)
		workspaces.DELETE("/:id", h.deleteWorkspace)
		workspaces.POST("/:id/select", h.selectWorkspace)
	}
}

// listWorkspaces godoc
// @Summary List workspaces
// @Description Lists all workspaces together with the reconciled current selection
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaces, err := h.workspaceService.ListWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	current, err := h.workspaceService.CurrentWorkspace(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces, current))
}

// getWorkspace godoc
// @Summary Get a workspace by ID
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// currentWorkspace godoc
// @Summary Get the currently selected workspace
// @Description Returns the reconciled current workspace, or null when none exists
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.WorkspaceResponse
// @Security BearerAuth
// @Router /workspaces/current [get]
func (h *workspaceHandler) currentWorkspace(c *gin.Context) {
	current, err := h.workspaceService.CurrentWorkspace(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if current == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(current))
}

// createWorkspace godoc
// @Summary Create a workspace
// @Description Creates a workspace and selects it (requires manage:workspaces)
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create workspace request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspace godoc
// @Summary Update a workspace
// @Description Applies the provided fields to a workspace (requires manage:workspaces)
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update workspace request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// deleteWorkspace godoc
// @Summary Delete a workspace
// @Description Deletes a workspace together with its projects and their tasks (requires manage:workspaces)
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// selectWorkspace godoc
// @Summary Select a workspace
// @Description Moves the current-selection pointer to a live workspace
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id}/select [post]
func (h *workspaceHandler) selectWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.SelectWorkspace(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}
