package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/middleware"
)

// authHandler handles login, logout and profile requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes registers the public authentication routes. The login
// endpoint carries its own rate limiter.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginRateLimit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.Token)

	auth := r.Group("/api/v1/auth")
	{
		if loginRateLimit != nil {
			auth.POST("/login", loginRateLimit, h.login)
		} else {
			auth.POST("/login", h.login)
		}
		auth.POST("/logout", h.logout)
	}
}

// registerProfileRoutes registers the authenticated profile route.
func registerProfileRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token)
	rg.GET("/auth/profile", h.profile)
}

// login godoc
// @Summary Sign in with email and password
// @Description Verifies credentials and returns a bearer token with the signed-in profile
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), &profile.User)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToTeamMemberResponse(profile),
	})
}

// logout godoc
// @Summary Sign out
// @Description Acknowledges a sign-out. Tokens are stateless, so logout is an idempotent acknowledgement; clients discard the token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}

// profile godoc
// @Summary Get the signed-in profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *authHandler) profile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(profile))
}
