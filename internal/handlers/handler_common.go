package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
)

// respondError writes the HTTP error payload for a service error: AppError
// messages pass through with their status code, anything else becomes a 500
// with a generic message.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}
	if status != 500 {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": "Internal server error"})
}
