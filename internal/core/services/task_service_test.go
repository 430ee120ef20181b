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

func TestCreateTaskDefaultsStatusAndPriority(t *testing.T) {
	c := newTestContainer(t)

	// Contributors hold manage:tasks and may create tasks.
	created, err := c.Task.CreateTask(context.Background(), dto.CreateTaskRequest{
		ProjectID: "3",
		Title:     "Pick a static site generator",
	}, contributorID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Nil(t, created.AssignedTo)
}

func TestCreateTaskCapturesAssigneeSnapshot(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	created, err := c.Task.CreateTask(ctx, dto.CreateTaskRequest{
		ProjectID:  "1",
		Title:      "Review color palette",
		AssignedTo: &dto.TaskAssigneeRequest{UserID: managerID},
	}, adminID)
	require.NoError(t, err)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, managerID, created.AssignedTo.UserID)
	assert.Equal(t, "Maria Gomez", created.AssignedTo.Name)

	// Renaming the member later does not rewrite the stored snapshot.
	name := "Maria G."
	_, err = c.User.UpdateMember(ctx, managerID, dto.UpdateTeamMemberRequest{Name: &name}, adminID)
	require.NoError(t, err)

	task, err := c.Task.GetTask(ctx, created.TaskID)
	require.NoError(t, err)
	require.NotNil(t, task.AssignedTo)
	assert.Equal(t, "Maria Gomez", task.AssignedTo.Name)
}

func TestCreateTaskRejectsUnknownAssignee(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Task.CreateTask(context.Background(), dto.CreateTaskRequest{
		ProjectID:  "1",
		Title:      "Orphan assignment",
		AssignedTo: &dto.TaskAssigneeRequest{UserID: "ghost"},
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "assigned team member does not exist")
}

func TestUpdateTaskReassignsSnapshot(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	updated, err := c.Task.UpdateTask(ctx, "1", dto.UpdateTaskRequest{
		AssignedTo: &dto.TaskAssigneeRequest{UserID: contributorID},
	}, adminID)
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, "Lee Wong", updated.AssignedTo.Name)
}

func TestListTasksHonorsFilters(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	tasks, err := c.Task.ListTasks(ctx, dto.ListTasksParams{ProjectID: "1", Status: string(domain.TaskCompleted)})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Design homepage mockup", tasks[0].Title)

	tasks, err = c.Task.ListTasks(ctx, dto.ListTasksParams{Priority: string(domain.PriorityHigh)})
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestTaskDueDateValidation(t *testing.T) {
	c := newTestContainer(t)

	_, err := c.Task.CreateTask(context.Background(), dto.CreateTaskRequest{
		ProjectID: "1",
		Title:     "Bad due date",
		DueDate:   "someday",
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}
