package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitzhq/taskboard/internal/domain/model"
	"github.com/blitzhq/taskboard/internal/domain/port/driven"
)

func seedOwner(t *testing.T, db *DB, id, email string) {
	t.Helper()
	require.NoError(t, NewUserRepo(db).Create(context.Background(), makeUser(id, "Owner "+id, email)))
}

func makeTask(id, name, ownerID, ownerEmail string) model.Task {
	return model.Task{
		ID:          id,
		Name:        name,
		Description: "a description",
		Status:      model.TaskStatusPending,
		OwnerID:     ownerID,
		OwnerEmail:  ownerEmail,
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTaskRepo_Create_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	err := repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "write report", got.Name)
	assert.Equal(t, "a description", got.Description)
	assert.Equal(t, model.TaskStatusPending, got.Status)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "alice@x.com", got.OwnerEmail)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTaskRepo_Create_DuplicateNameSameOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com")))

	err := repo.Create(ctx, makeTask("t2", "write report", "u1", "alice@x.com"))
	assert.ErrorIs(t, err, driven.ErrTaskNameTaken)
}

func TestTaskRepo_Create_SameNameDifferentOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	seedOwner(t, db, "u2", "bob@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com")))

	// Name uniqueness is scoped per owner, not global.
	err := repo.Create(ctx, makeTask("t2", "write report", "u2", "bob@x.com"))
	assert.NoError(t, err)
}

func TestTaskRepo_GetByNameAndOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com")))

	got, err := repo.GetByNameAndOwner(ctx, "write report", "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)

	none, err := repo.GetByNameAndOwner(ctx, "write report", "u2")
	require.NoError(t, err)
	assert.Nil(t, none, "other owner's lookup should not match")
}

func TestTaskRepo_ListAll_And_ListByOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	seedOwner(t, db, "u2", "bob@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	a := makeTask("t1", "alpha", "u1", "alice@x.com")
	b := makeTask("t2", "beta", "u2", "bob@x.com")
	b.CreatedAt = a.CreatedAt.Add(time.Minute)
	c := makeTask("t3", "gamma", "u1", "alice@x.com")
	c.CreatedAt = a.CreatedAt.Add(2 * time.Minute)

	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, c))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)
	assert.Equal(t, "t3", all[2].ID)

	mine, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "t1", mine[0].ID)
	assert.Equal(t, "t3", mine[1].ID)
}

func TestTaskRepo_ListByOwner_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	tasks, err := repo.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com")))

	err := repo.UpdateStatus(ctx, "t1", model.TaskStatusDone)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.TaskStatusDone, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestTaskRepo_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	err := repo.UpdateStatus(ctx, "missing", model.TaskStatusDone)
	assert.ErrorIs(t, err, driven.ErrTaskNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "u1", "alice@x.com")
	repo := NewTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeTask("t1", "write report", "u1", "alice@x.com")))
	require.NoError(t, repo.Delete(ctx, "t1"))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete of the same id reports not found.
	err = repo.Delete(ctx, "t1")
	assert.ErrorIs(t, err, driven.ErrTaskNotFound)
}
