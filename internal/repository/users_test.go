package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/models"
)

func newTestUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	return NewUserRepository(filepath.Join(t.TempDir(), usersFile))
}

func TestUserRepository_List_SeedsDefaultAdmin(t *testing.T) {
	repo := newTestUserRepo(t)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	admin := users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("1234")))
}

func TestUserRepository_List_SeedingIsIdempotent(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	repo := newTestUserRepo(t)

	user := models.User{Username: "alice", PasswordHash: "h", Email: "a@x.com", Role: models.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))

	before, err := repo.List(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	// Collection unchanged by the failed create
	after, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUserRepository_SaveAll(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(context.Background(), []models.User{
		{Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin},
		{Username: "alice", Email: "a@x.com", Role: models.RoleUser},
	}))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[1].Username)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo := newTestUserRepo(t)
	require.NoError(t, repo.Create(context.Background(), models.User{
		Username: "alice", Email: "a@x.com", Role: models.RoleUser,
	}))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newTestUserRepo(t)
	require.NoError(t, repo.Create(context.Background(), models.User{Username: "alice"}))

	require.NoError(t, repo.Delete(context.Background(), "alice"))

	_, err := repo.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	err = repo.Delete(context.Background(), "alice")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_Promote(t *testing.T) {
	repo := newTestUserRepo(t)
	require.NoError(t, repo.Create(context.Background(), models.User{
		Username: "alice", Role: models.RoleUser,
	}))

	require.NoError(t, repo.Promote(context.Background(), "alice"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	err = repo.Promote(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
