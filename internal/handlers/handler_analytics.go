package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/middleware"
)

// analyticsHandler serves the dashboard aggregates.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers the analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)
	rg.GET("/analytics/summary", h.summary)
}

// summary godoc
// @Summary Get the analytics summary
// @Description Aggregates dashboard-wide counts and completion figures (requires view:analytics)
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticsSummaryResponse(summary))
}
