package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
	"github.com/lcervantes/bistro-backend/pkg/enums"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// AdminStats is the owner dashboard summary.
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// MenuStats is the lightweight storefront counter pair.
type MenuStats struct {
	Products int64 `json:"products"`
	Orders   int64 `json:"orders"`
}

// CategoryStat aggregates settled order lines per menu category.
type CategoryStat struct {
	Category enums.MenuCategory `json:"category"`
	Count    int64              `json:"count"`
	Total    float64            `json:"total"`
}

// Service defines the reporting operations.
type Service interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	MenuStats(ctx context.Context) (*MenuStats, error)
	OrderStats(ctx context.Context) ([]CategoryStat, error)
}

type service struct {
	repo Repository
}

// NewService builds a stats service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stats repository required")
	}
	return &service{repo: repo}, nil
}

// AdminStats reports entity counts and total revenue. Revenue is summed with
// decimal arithmetic so float prices never drift.
func (s *service) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count users")
	}
	products, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count menu items")
	}

	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}

	revenue := decimal.Zero
	for _, p := range payments {
		revenue = revenue.Add(decimal.NewFromFloat(p.Price))
	}

	return &AdminStats{
		Users:    users,
		Products: products,
		Orders:   int64(len(payments)),
		Revenue:  revenue.Round(2).InexactFloat64(),
	}, nil
}

func (s *service) MenuStats(ctx context.Context) (*MenuStats, error) {
	products, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count menu items")
	}
	orders, err := s.repo.CountPayments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count payments")
	}
	return &MenuStats{Products: products, Orders: orders}, nil
}

// OrderStats joins settled payments against the catalog and groups the sold
// lines per category. Totals use decimal arithmetic and are rounded to two
// places. Menu ids that no longer resolve to a catalog entry are skipped.
func (s *service) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}

	idSet := make(map[uuid.UUID]struct{})
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	items, err := s.repo.FindMenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu items")
	}
	byID := make(map[uuid.UUID]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	counts := make(map[enums.MenuCategory]int64)
	totals := make(map[enums.MenuCategory]decimal.Decimal)
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			item, ok := byID[id]
			if !ok {
				continue
			}
			counts[item.Category]++
			totals[item.Category] = totals[item.Category].Add(decimal.NewFromFloat(item.Price))
		}
	}

	out := make([]CategoryStat, 0, len(counts))
	for category, count := range counts {
		out = append(out, CategoryStat{
			Category: category,
			Count:    count,
			Total:    totals[category].Round(2).InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
