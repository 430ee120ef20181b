package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/adapters/database/memory"
	"github.com/teamboardhq/team_board_app/internal/apperrors"
	portssvc "github.com/teamboardhq/team_board_app/internal/core/ports/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/platform/config"
)

// Seeded member IDs: 1 is an admin, 2 a manager, 3 a contributor.
const (
	adminID       = "1"
	managerID     = "2"
	contributorID = "3"
)

func newTestContainer(t *testing.T) *portssvc.ServiceContainer {
	t.Helper()
	store := memory.NewStore(memory.Options{})
	data, err := memory.SampleData()
	require.NoError(t, err)
	store.Seed(data)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	return NewServiceContainer(cfg, memory.NewRepositoryProvider(store))
}

func TestListWorkspacesSelectsFirstByDefault(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	workspaces, err := c.Workspace.ListWorkspaces(ctx, adminID)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)

	current, err := c.Workspace.CurrentWorkspace(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.WorkspaceID)
}

func TestSelectWorkspaceMovesSelection(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	selected, err := c.Workspace.SelectWorkspace(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Personal Projects", selected.Name)

	current, err := c.Workspace.CurrentWorkspace(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "2", current.WorkspaceID)
}

func TestSelectMissingWorkspaceFails(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Workspace.SelectWorkspace(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusCode(err))
}

func TestCreateWorkspaceBecomesCurrent(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	created, err := c.Workspace.CreateWorkspace(ctx, dto.CreateWorkspaceRequest{
		Name:        "Client Work",
		Description: "Agency engagements",
	}, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, created.ProjectCount)

	current, err := c.Workspace.CurrentWorkspace(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, created.WorkspaceID, current.WorkspaceID)
}

func TestDeleteSelectedWorkspaceFallsBackToFirst(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	_, err := c.Workspace.SelectWorkspace(ctx, "2")
	require.NoError(t, err)

	require.NoError(t, c.Workspace.DeleteWorkspace(ctx, "2", adminID))

	current, err := c.Workspace.CurrentWorkspace(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.WorkspaceID)
}

func TestDeleteLastWorkspaceClearsSelection(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, c.Workspace.DeleteWorkspace(ctx, "1", adminID))
	require.NoError(t, c.Workspace.DeleteWorkspace(ctx, "2", adminID))

	current, err := c.Workspace.CurrentWorkspace(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	workspaces, err := c.Workspace.ListWorkspaces(ctx, adminID)
	require.NoError(t, err)
	assert.Empty(t, workspaces)
}

func TestWorkspaceWritesRequireManageWorkspaces(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	_, err := c.Workspace.CreateWorkspace(ctx, dto.CreateWorkspaceRequest{Name: "Shadow"}, managerID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))

	err = c.Workspace.DeleteWorkspace(ctx, "1", contributorID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))
}

func TestUpdateWorkspacePreservesOmittedFields(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	name := "My Company (renamed)"
	updated, err := c.Workspace.UpdateWorkspace(ctx, "1", dto.UpdateWorkspaceRequest{Name: &name}, adminID)
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "Main workspace for company projects", updated.Description)
	assert.Equal(t, 2, updated.ProjectCount)
}
