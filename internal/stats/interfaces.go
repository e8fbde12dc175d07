package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
)

// Repository defines the reads the reporting service aggregates over.
type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.MenuItem, error)
}
