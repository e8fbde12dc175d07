package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a pending line owned exclusively by OwnerEmail. Settlement
// deletes the rows it references, so an item can back at most one payment.
type CartItem struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OwnerEmail string    `gorm:"column:owner_email;type:text;not null;index"`
	MenuItemID uuid.UUID `gorm:"column:menu_item_id;type:uuid;not null"`
	Name       string    `gorm:"column:name;not null"`
	Image      string    `gorm:"column:image"`
	Price      float64   `gorm:"column:price;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
