package payments

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// PaymentDTO is the transport shape for settled payments.
type PaymentDTO struct {
	ID            uuid.UUID   `json:"id"`
	PayerEmail    string      `json:"payer_email"`
	Price         float64     `json:"price"`
	TransactionID string      `json:"transaction_id"`
	CartItemIDs   []uuid.UUID `json:"cart_item_ids"`
	MenuItemIDs   []uuid.UUID `json:"menu_item_ids"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func FromModel(p *models.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}

	return &PaymentDTO{
		ID:            p.ID,
		PayerEmail:    p.PayerEmail,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		CartItemIDs:   append([]uuid.UUID(nil), []uuid.UUID(p.CartItemIDs)...),
		MenuItemIDs:   append([]uuid.UUID(nil), []uuid.UUID(p.MenuItemIDs)...),
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func FromModels(records []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
