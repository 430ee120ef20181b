package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(Options{})
	data, err := SampleData()
	require.NoError(t, err)
	s.Seed(data)
	return s
}

func TestSeedRecomputesDerivedCounts(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	workspaces, err := s.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	// Fixture claims 3 projects for workspace 1; the store trusts only the
	// actual child collections.
	assert.Equal(t, 2, workspaces[0].ProjectCount)
	assert.Equal(t, 1, workspaces[1].ProjectCount)

	projects, err := s.ListProjects(ctx, "")
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, 3, projects[0].TaskCount)
	assert.Equal(t, 2, projects[1].TaskCount)
	assert.Equal(t, 0, projects[2].TaskCount)
}

func TestCountsTrackMutations(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTask(ctx, domain.Task{TaskID: "t-new", ProjectID: "3", Title: "Write first post", Status: domain.TaskPending, Priority: domain.PriorityLow}))
	p, err := s.FindProjectByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TaskCount)

	require.NoError(t, s.DeleteTask(ctx, "t-new"))
	p, err = s.FindProjectByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 0, p.TaskCount)

	require.NoError(t, s.SaveProject(ctx, domain.Project{ProjectID: "p-new", WorkspaceID: "2", Name: "Home Lab", Status: domain.ProjectNotStarted}))
	ws, err := s.FindWorkspaceByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 2, ws.ProjectCount)
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteProject(ctx, "1"))

	_, err := s.FindProjectByID(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	tasks, err := s.ListTasks(ctx, portsrepo.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.NotEqual(t, "1", task.ProjectID)
	}

	ws, err := s.FindWorkspaceByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, ws.ProjectCount)
}

func TestDeleteWorkspaceCascadesToProjectsAndTasks(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteWorkspace(ctx, "1"))

	projects, err := s.ListProjects(ctx, "")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "3", projects[0].ProjectID)

	tasks, err := s.ListTasks(ctx, portsrepo.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveProjectRequiresWorkspace(t *testing.T) {
	s := newSeededStore(t)
	err := s.SaveProject(context.Background(), domain.Project{ProjectID: "px", WorkspaceID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveTaskRequiresProject(t *testing.T) {
	s := newSeededStore(t)
	err := s.SaveTask(context.Background(), domain.Task{TaskID: "tx", ProjectID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateMissingEntitiesReturnNotFound(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.UpdateWorkspace(ctx, domain.Workspace{WorkspaceID: "missing"}), apperrors.ErrNotFound)
	assert.ErrorIs(t, s.UpdateProject(ctx, domain.Project{ProjectID: "missing", WorkspaceID: "1"}), apperrors.ErrNotFound)
	assert.ErrorIs(t, s.UpdateTask(ctx, domain.Task{TaskID: "missing", ProjectID: "1"}), apperrors.ErrNotFound)
	assert.ErrorIs(t, s.DeleteWorkspace(ctx, "missing"), apperrors.ErrNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, "missing"), apperrors.ErrNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, "missing"), apperrors.ErrNotFound)
}

func TestDuplicateEmailRejectedCaseInsensitively(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	err := s.SaveUser(ctx, domain.User{UserID: "9", Name: "Dup", Email: "ALEX@example.com", RoleID: domain.RoleViewer})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Updating a member keeping their own email is fine.
	u, err := s.FindUserByID(ctx, "2")
	require.NoError(t, err)
	u.Name = "Maria G."
	assert.NoError(t, s.UpdateUser(ctx, *u))

	// Taking another member's email is not.
	u.Email = "lee@example.com"
	assert.ErrorIs(t, s.UpdateUser(ctx, *u), apperrors.ErrDuplicate)
}

func TestUnknownRoleRejected(t *testing.T) {
	s := newSeededStore(t)
	err := s.SaveUser(context.Background(), domain.User{UserID: "9", Name: "X", Email: "x@example.com", RoleID: "superuser"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}

func TestFindUserByEmailIsCaseInsensitive(t *testing.T) {
	s := newSeededStore(t)
	u, err := s.FindUserByEmail(context.Background(), "Alex@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "1", u.UserID)
}

func TestTaskFilters(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	byProject, err := s.ListTasks(ctx, portsrepo.TaskFilter{ProjectID: "1"})
	require.NoError(t, err)
	assert.Len(t, byProject, 3)

	completed, err := s.ListTasks(ctx, portsrepo.TaskFilter{Status: domain.TaskCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 2)

	highInOne, err := s.ListTasks(ctx, portsrepo.TaskFilter{ProjectID: "1", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	assert.Len(t, highInOne, 2)
}

func TestReadsReturnIsolatedCopies(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	tasks, err := s.ListTasks(ctx, portsrepo.TaskFilter{ProjectID: "1"})
	require.NoError(t, err)
	tasks[0].Title = "mutated"
	tasks[0].DueDate = nil

	again, err := s.FindTaskByID(ctx, tasks[0].TaskID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
	assert.NotNil(t, again.DueDate)

	again.AssignedTo = &domain.TaskAssignee{UserID: "1", Name: "Alex Johnson"}
	third, err := s.FindTaskByID(ctx, again.TaskID)
	require.NoError(t, err)
	assert.Nil(t, third.AssignedTo)
}

func TestRoleCatalogue(t *testing.T) {
	s := NewStore(Options{})
	ctx := context.Background()

	roles, err := s.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 4)

	admin, err := s.FindRoleByID(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, domain.HasPermission(admin, domain.PermManageTeam))

	_, err = s.FindRoleByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestConcurrentMutationsKeepCountsConsistent(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("conc-%d", n)
			if err := s.SaveTask(ctx, domain.Task{TaskID: id, ProjectID: "2", Title: id, Status: domain.TaskPending, Priority: domain.PriorityLow}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	p, err := s.FindProjectByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 22, p.TaskCount)
}
