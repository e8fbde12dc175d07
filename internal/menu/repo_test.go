package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/enums"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	menuItems := `
CREATE TABLE IF NOT EXISTS menu_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  recipe TEXT,
  image TEXT,
  category TEXT NOT NULL,
  price REAL NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(menuItems).Error)
	require.NoError(t, db.Exec("DELETE FROM menu_items").Error)
	return db
}

func TestRepositoryCreateAndList(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateMenuItemDTO{
		Name:     "Margherita",
		Category: enums.MenuCategoryPizza,
		Price:    12.50,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Margherita", records[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateMenuItemDTO{
		Name:     "Lentil Soup",
		Category: enums.MenuCategorySoup,
		Price:    6.25,
	})
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
