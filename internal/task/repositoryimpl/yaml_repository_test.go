package repositoryimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/internal/task"
	"github.com/firedeskhq/firedesk/pkg/cerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

func newRepo(t *testing.T) *YAMLRepository {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewYAMLRepository(s)
}

func newTask(id, projectID, assigneeID string) *task.Task {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &task.Task{
		ID:         id,
		ProjectID:  projectID,
		Name:       "Install sprinkler heads",
		Status:     task.StatusPending,
		Priority:   task.PriorityMedium,
		AssigneeID: assigneeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	want := newTask("t1", "p1", "u1")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, newTask("t1", "p1", "")))
	err := repo.Create(ctx, newTask("t1", "p1", ""))
	assert.True(t, cerr.IsCode(err, cerr.AlreadyExists))
}

func TestGetNotFound(t *testing.T) {
	_, err := newRepo(t).Get(context.Background(), "missing")
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, newTask("t1", "p1", "u1")))
	require.NoError(t, repo.Create(ctx, newTask("t2", "p1", "u2")))
	require.NoError(t, repo.Create(ctx, newTask("t3", "p2", "u1")))

	all, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProject, err := repo.List(ctx, "p1", "")
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byBoth, err := repo.List(ctx, "p1", "u1")
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "t1", byBoth[0].ID)
}

func TestListEmptyStore(t *testing.T) {
	tasks, err := newRepo(t).List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	tk := newTask("t1", "p1", "")
	require.NoError(t, repo.Create(ctx, tk))

	tk.Status = task.StatusCompleted
	require.NoError(t, repo.Update(ctx, tk))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
}

func TestUpdateMissing(t *testing.T) {
	err := newRepo(t).Update(context.Background(), newTask("ghost", "p1", ""))
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, newTask("t1", "p1", "")))
	require.NoError(t, repo.Delete(ctx, "t1"))

	_, err := repo.Get(ctx, "t1")
	assert.True(t, cerr.IsCode(err, cerr.NotFound))

	assert.True(t, cerr.IsCode(repo.Delete(ctx, "t1"), cerr.NotFound))
}
