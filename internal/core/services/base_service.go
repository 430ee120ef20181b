package services

import (
	"context"
	"log/slog"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.PermissionAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks that the user's role carries the given permission key.
func (s *BaseService) Authorize(ctx context.Context, userID string, permission domain.Permission) error {
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizePermission(ctx, userID, permission)
	}
	s.LogDebug(ctx, "No permission authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("permission", string(permission)))
	return nil
}
