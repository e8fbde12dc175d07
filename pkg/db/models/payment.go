package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/lcervantes/bistro-backend/pkg/db/types"
)

// Payment records a settled client-side payment confirmation. Rows are
// immutable once written; CartItemIDs reference cart rows that were deleted
// in the same transaction.
type Payment struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	PayerEmail    string            `gorm:"column:payer_email;type:text;not null;index"`
	Price         float64           `gorm:"column:price;not null"`
	TransactionID string            `gorm:"column:transaction_id;not null"`
	CartItemIDs   dbtypes.UUIDArray `gorm:"column:cart_item_ids;type:text;not null"`
	MenuItemIDs   dbtypes.UUIDArray `gorm:"column:menu_item_ids;type:text;not null"`
	Status        string            `gorm:"column:status;not null;default:'paid'"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
}
