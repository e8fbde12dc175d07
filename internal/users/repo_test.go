package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	usersTable := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'member',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(usersTable).Error)
	return db
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	email := uniqueEmail("create")
	created, err := repo.Create(ctx, CreateUserDTO{Email: email, Name: "Ada"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enums.UserRoleMember, created.Role)

	byEmail, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)
}

func TestRepositoryCreateDuplicateEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	email := uniqueEmail("dup")
	_, err := repo.Create(ctx, CreateUserDTO{Email: email, Name: "First"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{Email: email, Name: "Second"})
	require.Error(t, err)
}

func TestRepositoryFindByEmailNotFound(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByEmail(context.Background(), uniqueEmail("ghost"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositorySetRole(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Email: uniqueEmail("role"), Name: "Member"})
	require.NoError(t, err)

	affected, err := repo.SetRole(ctx, created.ID, enums.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleAdmin, reloaded.Role)

	affected, err = repo.SetRole(ctx, uuid.New(), enums.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
