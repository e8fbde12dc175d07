package payments

import (
	"context"

	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// Repository exposes payment persistence operations. Payment rows are
// insert-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a payments repo bound to the provided GORM DB.
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

// Create inserts a payment record.
func (r *Repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// ListByPayer returns the payer's payment history, newest first.
func (r *Repository) ListByPayer(ctx context.Context, payerEmail string) ([]models.Payment, error) {
	var records []models.Payment
	err := r.db.WithContext(ctx).
		Where("payer_email = ?", payerEmail).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll returns every payment record.
func (r *Repository) ListAll(ctx context.Context) ([]models.Payment, error) {
	var records []models.Payment
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count reports the number of payment records.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
