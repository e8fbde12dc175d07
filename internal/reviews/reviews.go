package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// ReviewDTO is the transport shape for storefront reviews.
type ReviewDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details,omitempty"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository exposes review persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every review, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Review, error) {
	var records []models.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Service defines review operations.
type Service interface {
	List(ctx context.Context) ([]ReviewDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a reviews service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ReviewDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}

	out := make([]ReviewDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, ReviewDTO{
			ID:        rec.ID,
			Name:      rec.Name,
			Details:   rec.Details,
			Rating:    rec.Rating,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out, nil
}
