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

func makeUser(id, name, email string) model.User {
	return model.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         model.RoleMember,
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestUserRepo_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	err := repo.Create(ctx, makeUser("u1", "Alice", "alice@x.com"))
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@x.com", got.Email)
	assert.Equal(t, model.RoleMember, got.Role)
	assert.NotEmpty(t, got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeUser("u1", "Alice", "alice@x.com")))

	err := repo.Create(ctx, makeUser("u2", "Someone Else", "alice@x.com"))
	assert.ErrorIs(t, err, driven.ErrEmailTaken)
}

func TestUserRepo_Create_AdminRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	admin := makeUser("u1", "Admin", "admin@blitz.com")
	admin.Role = model.RoleAdmin
	require.NoError(t, repo.Create(ctx, admin))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.RoleAdmin, got.Role)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	got, err := repo.GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, got, "unknown email should return nil without error")
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
