package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/enums"
)

// MenuItem is a sellable catalog entry.
type MenuItem struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name      string             `gorm:"column:name;not null"`
	Recipe    string             `gorm:"column:recipe"`
	Image     string             `gorm:"column:image"`
	Category  enums.MenuCategory `gorm:"column:category;type:text;not null"`
	Price     float64            `gorm:"column:price;not null"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}
