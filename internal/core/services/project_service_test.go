package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/dto"
)

func TestListProjectsSelectsFirstByDefault(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	projects, err := c.Project.ListProjects(ctx, "")
	require.NoError(t, err)
	require.Len(t, projects, 3)

	current, err := c.Project.CurrentProject(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.ProjectID)
}

func TestCreateProjectDefaultsAndSelection(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	created, err := c.Project.CreateProject(ctx, dto.CreateProjectRequest{
		WorkspaceID: "2",
		Name:        "Garden Tracker",
		Deadline:    "2026-05-01",
	}, managerID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectNotStarted, created.Status)
	assert.Equal(t, 0, created.CompletionRate)
	require.NotNil(t, created.Deadline)
	assert.Equal(t, "2026-05-01", created.Deadline.Format("2006-01-02"))

	current, err := c.Project.CurrentProject(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, created.ProjectID, current.ProjectID)
}

func TestCreateProjectRejectsMalformedDeadline(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Project.CreateProject(context.Background(), dto.CreateProjectRequest{
		WorkspaceID: "1",
		Name:        "Bad Deadline",
		Deadline:    "31/12/2025",
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}

func TestCreateProjectRequiresExistingWorkspace(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Project.CreateProject(context.Background(), dto.CreateProjectRequest{
		WorkspaceID: "missing",
		Name:        "Orphan",
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "Workspace not found")
}

func TestDeleteSelectedProjectFallsBackToFirst(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	_, err := c.Project.SelectProject(ctx, "2")
	require.NoError(t, err)

	require.NoError(t, c.Project.DeleteProject(ctx, "2", managerID))

	current, err := c.Project.CurrentProject(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.ProjectID)
}

func TestDeleteAllProjectsClearsSelection(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, c.Project.DeleteProject(ctx, id, adminID))
	}

	current, err := c.Project.CurrentProject(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestProjectWritesRequireManageProjects(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Project.CreateProject(context.Background(), dto.CreateProjectRequest{
		WorkspaceID: "1",
		Name:        "Not allowed",
	}, contributorID)
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.StatusCode(err))
}

func TestUpdateProjectClearsDeadlineWithEmptyString(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	empty := ""
	updated, err := c.Project.UpdateProject(ctx, "1", dto.UpdateProjectRequest{Deadline: &empty}, managerID)
	require.NoError(t, err)
	assert.Nil(t, updated.Deadline)
	assert.Equal(t, "Website Redesign", updated.Name)
}
