package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
	"github.com/lcervantes/bistro-backend/pkg/enums"
)

// MenuItemDTO is the transport shape for catalog entries.
type MenuItemDTO struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Recipe    string             `json:"recipe,omitempty"`
	Image     string             `json:"image,omitempty"`
	Category  enums.MenuCategory `json:"category"`
	Price     float64            `json:"price"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateMenuItemDTO holds the data required to persist a new catalog entry.
type CreateMenuItemDTO struct {
	Name     string
	Recipe   string
	Image    string
	Category enums.MenuCategory
	Price    float64
}

func FromModel(m *models.MenuItem) *MenuItemDTO {
	if m == nil {
		return nil
	}

	return &MenuItemDTO{
		ID:        m.ID,
		Name:      m.Name,
		Recipe:    m.Recipe,
		Image:     m.Image,
		Category:  m.Category,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(records []models.MenuItem) []MenuItemDTO {
	out := make([]MenuItemDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}

func (c CreateMenuItemDTO) ToModel() *models.MenuItem {
	return &models.MenuItem{
		ID:       uuid.New(),
		Name:     c.Name,
		Recipe:   c.Recipe,
		Image:    c.Image,
		Category: c.Category,
		Price:    c.Price,
	}
}
