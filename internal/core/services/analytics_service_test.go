package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
)

func TestAnalyticsSummaryOverSampleData(t *testing.T) {
	c := newTestContainer(t)

	summary, err := c.Analytics.Summary(context.Background(), adminID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.WorkspaceCount)
	assert.Equal(t, 3, summary.ProjectCount)
	assert.Equal(t, 5, summary.TaskCount)

	assert.Equal(t, 2, summary.ProjectsByStatus[domain.ProjectInProgress])
	assert.Equal(t, 1, summary.ProjectsByStatus[domain.ProjectNotStarted])
	assert.Equal(t, 2, summary.TasksByStatus[domain.TaskCompleted])
	assert.Equal(t, 2, summary.TasksByStatus[domain.TaskInProgress])
	assert.Equal(t, 1, summary.TasksByStatus[domain.TaskPending])

	// (45 + 25 + 0) / 3 = 23.33, rounded to two places.
	assert.True(t, summary.AverageCompletionRate.Equal(decimal.RequireFromString("23.33")),
		"got %s", summary.AverageCompletionRate)
	// 2 of 5 tasks completed.
	assert.True(t, summary.TaskCompletionPercent.Equal(decimal.RequireFromString("40")),
		"got %s", summary.TaskCompletionPercent)

	require.Len(t, summary.Workspaces, 2)
	company := summary.Workspaces[0]
	assert.Equal(t, "1", company.WorkspaceID)
	assert.Equal(t, 2, company.ProjectCount)
	assert.Equal(t, 5, company.TaskCount)
	assert.True(t, company.AverageCompletionRate.Equal(decimal.RequireFromString("35")),
		"got %s", company.AverageCompletionRate)

	personal := summary.Workspaces[1]
	assert.Equal(t, 1, personal.ProjectCount)
	assert.Equal(t, 0, personal.TaskCount)
	assert.True(t, personal.AverageCompletionRate.Equal(decimal.Zero))
}

func TestAnalyticsSummaryRequiresViewAnalytics(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Analytics.Summary(context.Background(), contributorID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))
}

func TestAnalyticsSummaryOnEmptyData(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.Workspace.DeleteWorkspace(ctx, "1", adminID))
	require.NoError(t, c.Workspace.DeleteWorkspace(ctx, "2", adminID))

	summary, err := c.Analytics.Summary(ctx, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ProjectCount)
	assert.Equal(t, 0, summary.TaskCount)
	assert.True(t, summary.AverageCompletionRate.IsZero())
	assert.True(t, summary.TaskCompletionPercent.IsZero())
}
