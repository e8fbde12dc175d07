package carts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// Service defines cart operations. Every operation is scoped to the verified
// caller email; the owner field on stored lines always comes from the claims,
// never from the request body.
type Service interface {
	ListForOwner(ctx context.Context, callerEmail, requestedEmail string) ([]CartItemDTO, error)
	Add(ctx context.Context, callerEmail string, input AddCartItemInput) (*CartItemDTO, error)
	Remove(ctx context.Context, callerEmail string, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// AddCartItemInput carries the fields accepted when adding a cart line.
type AddCartItemInput struct {
	MenuItemID uuid.UUID
	Name       string
	Image      string
	Price      float64
}

// NewService builds a carts service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("carts repository required")
	}
	return &service{repo: repo}, nil
}

// ListForOwner returns the caller's cart lines. A requested email that does
// not match the verified caller is rejected; an empty requested email yields
// an empty list rather than an error.
func (s *service) ListForOwner(ctx context.Context, callerEmail, requestedEmail string) ([]CartItemDTO, error) {
	caller := normalizeEmail(callerEmail)
	requested := normalizeEmail(requestedEmail)

	if requested == "" {
		return []CartItemDTO{}, nil
	}
	if caller == "" || caller != requested {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access")
	}

	records, err := s.repo.ListByOwner(ctx, caller)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}
	return FromModels(records), nil
}

func (s *service) Add(ctx context.Context, callerEmail string, input AddCartItemInput) (*CartItemDTO, error) {
	caller := normalizeEmail(callerEmail)
	if caller == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	if input.MenuItemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item id required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	created, err := s.repo.Create(ctx, CreateCartItemDTO{
		OwnerEmail: caller,
		MenuItemID: input.MenuItemID,
		Name:       name,
		Image:      strings.TrimSpace(input.Image),
		Price:      input.Price,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart item")
	}
	return FromModel(created), nil
}

// Remove deletes a single cart line after verifying the caller owns it.
func (s *service) Remove(ctx context.Context, callerEmail string, id uuid.UUID) error {
	caller := normalizeEmail(callerEmail)
	if caller == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart item id required")
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
	}
	if normalizeEmail(item.OwnerEmail) != caller {
		return pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
