package carts

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// CartItemDTO is the transport shape for pending cart lines.
type CartItemDTO struct {
	ID         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCartItemDTO holds the data required to persist a cart line.
type CreateCartItemDTO struct {
	OwnerEmail string
	MenuItemID uuid.UUID
	Name       string
	Image      string
	Price      float64
}

func FromModel(c *models.CartItem) *CartItemDTO {
	if c == nil {
		return nil
	}

	return &CartItemDTO{
		ID:         c.ID,
		OwnerEmail: c.OwnerEmail,
		MenuItemID: c.MenuItemID,
		Name:       c.Name,
		Image:      c.Image,
		Price:      c.Price,
		CreatedAt:  c.CreatedAt,
	}
}

func FromModels(records []models.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}

func (c CreateCartItemDTO) ToModel() *models.CartItem {
	return &models.CartItem{
		ID:         uuid.New(),
		OwnerEmail: c.OwnerEmail,
		MenuItemID: c.MenuItemID,
		Name:       c.Name,
		Image:      c.Image,
		Price:      c.Price,
	}
}
