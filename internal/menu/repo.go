package menu

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// Repository exposes catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a menu repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every catalog entry ordered by creation time.
func (r *Repository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	var records []models.MenuItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new catalog entry and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateMenuItemDTO) (*models.MenuItem, error) {
	item := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a catalog entry. The returned count reports whether a row
// matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	return res.RowsAffected, res.Error
}

// Count reports the number of catalog entries.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
