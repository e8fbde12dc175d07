package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/enums"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// Service defines catalog operations.
type Service interface {
	List(ctx context.Context) ([]MenuItemDTO, error)
	Create(ctx context.Context, input CreateMenuItemInput) (*MenuItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// CreateMenuItemInput carries the fields accepted when adding a catalog entry.
type CreateMenuItemInput struct {
	Name     string
	Recipe   string
	Image    string
	Category string
	Price    float64
}

// NewService builds a menu service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]MenuItemDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return FromModels(records), nil
}

func (s *service) Create(ctx context.Context, input CreateMenuItemInput) (*MenuItemDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	category := enums.MenuCategory(strings.TrimSpace(strings.ToLower(input.Category)))
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category")
	}

	created, err := s.repo.Create(ctx, CreateMenuItemDTO{
		Name:     name,
		Recipe:   strings.TrimSpace(input.Recipe),
		Image:    strings.TrimSpace(input.Image),
		Category: category,
		Price:    input.Price,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create menu item")
	}
	return FromModel(created), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "menu item id required")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete menu item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return nil
}
