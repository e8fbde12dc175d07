package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback shown on the storefront.
type Review struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Details   string    `gorm:"column:details"`
	Rating    float64   `gorm:"column:rating;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
