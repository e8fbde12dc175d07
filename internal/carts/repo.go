package carts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// Repository exposes cart persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a carts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repo view bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListByOwner returns every cart line owned by the given email.
func (r *Repository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.CartItem, error) {
	var records []models.CartItem
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new cart line and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateCartItemDTO) (*models.CartItem, error) {
	item := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads a cart line by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a cart line. The returned count reports whether a row
// matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// FindOwnedByIDs loads the subset of the given ids that is owned by
// ownerEmail. Settlement uses it to re-verify ownership inside the
// transaction.
func (r *Repository) FindOwnedByIDs(ctx context.Context, ownerEmail string, ids []uuid.UUID) ([]models.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.CartItem
	err := r.db.WithContext(ctx).
		Where("owner_email = ? AND id IN ?", ownerEmail, ids).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByIDs removes the cart lines matching the given ids for the owner.
func (r *Repository) DeleteByIDs(ctx context.Context, ownerEmail string, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("owner_email = ? AND id IN ?", ownerEmail, ids).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
