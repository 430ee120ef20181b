package services

import (
	"context"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

// RoleSvcFacade exposes the read-only role catalogue.
type RoleSvcFacade interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	GetRole(ctx context.Context, roleID string) (*domain.Role, error)
}

// AnalyticsSvcFacade computes the dashboard aggregates, gated on
// view:analytics.
type AnalyticsSvcFacade interface {
	Summary(ctx context.Context, requestingUserID string) (*domain.AnalyticsSummary, error)
}
