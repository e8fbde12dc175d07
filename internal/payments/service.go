package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/internal/carts"
	"github.com/lcervantes/bistro-backend/pkg/db/models"
	dbtypes "github.com/lcervantes/bistro-backend/pkg/db/types"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service coordinates payment settlement: recording the confirmed payment
// and clearing the settled cart lines as one unit of work.
type Service interface {
	Settle(ctx context.Context, payerEmail string, input SettleInput) (*SettleResult, error)
	History(ctx context.Context, payerEmail string) ([]PaymentDTO, error)
}

type service struct {
	tx       txRunner
	payments *Repository
	carts    *carts.Repository
}

// SettleInput is the client-confirmed payment the coordinator records.
type SettleInput struct {
	Price         float64
	TransactionID string
	CartItemIDs   []uuid.UUID
	MenuItemIDs   []uuid.UUID
}

// SettleResult reports what the settlement actually did. RemovedCartItemIDs
// holds the lines that were deleted; under a concurrent settlement it can be
// a strict subset of the requested ids.
type SettleResult struct {
	PaymentID          uuid.UUID   `json:"payment_id"`
	RemovedCartItemIDs []uuid.UUID `json:"removed_cart_item_ids"`
	RemovedCount       int64       `json:"removed_count"`
}

// NewService builds a settlement coordinator with the required dependencies.
func NewService(tx txRunner, payments *Repository, cartsRepo *carts.Repository) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payments repository required")
	}
	if cartsRepo == nil {
		return nil, fmt.Errorf("carts repository required")
	}
	return &service{tx: tx, payments: payments, carts: cartsRepo}, nil
}

// Settle validates the payload, then in a single transaction inserts the
// payment record and deletes the payer-owned cart lines it references. Any
// failure rolls the whole unit back; a payment row never outlives its
// cleanup. Ids the payer does not own (or that another settlement already
// removed) are skipped silently.
func (s *service) Settle(ctx context.Context, payerEmail string, input SettleInput) (*SettleResult, error) {
	payer := strings.TrimSpace(strings.ToLower(payerEmail))
	if payer == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	if err := validateSettleInput(input); err != nil {
		return nil, err
	}

	var result SettleResult
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		paymentsRepo := s.payments.WithTx(tx)
		cartsRepo := s.carts.WithTx(tx)

		owned, err := cartsRepo.FindOwnedByIDs(ctx, payer, input.CartItemIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeSettlement, err, "load cart items")
		}

		removedIDs := make([]uuid.UUID, 0, len(owned))
		for _, item := range owned {
			removedIDs = append(removedIDs, item.ID)
		}

		payment := &models.Payment{
			ID:            uuid.New(),
			PayerEmail:    payer,
			Price:         input.Price,
			TransactionID: strings.TrimSpace(input.TransactionID),
			CartItemIDs:   dbtypes.UUIDArray(removedIDs),
			MenuItemIDs:   dbtypes.UUIDArray(input.MenuItemIDs),
			Status:        "paid",
		}
		if err := paymentsRepo.Create(ctx, payment); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeSettlement, err, "record payment")
		}

		removed, err := cartsRepo.DeleteByIDs(ctx, payer, removedIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeSettlement, err, "clear settled cart items")
		}

		result = SettleResult{
			PaymentID:          payment.ID,
			RemovedCartItemIDs: removedIDs,
			RemovedCount:       removed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) History(ctx context.Context, payerEmail string) ([]PaymentDTO, error) {
	payer := strings.TrimSpace(strings.ToLower(payerEmail))
	if payer == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	records, err := s.payments.ListByPayer(ctx, payer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	return FromModels(records), nil
}

func validateSettleInput(input SettleInput) error {
	var errs error
	if input.Price <= 0 {
		errs = multierr.Append(errs, errors.New("price must be positive"))
	}
	if strings.TrimSpace(input.TransactionID) == "" {
		errs = multierr.Append(errs, errors.New("transaction id is required"))
	}
	if len(input.CartItemIDs) == 0 {
		errs = multierr.Append(errs, errors.New("at least one cart item id is required"))
	}
	for _, id := range input.CartItemIDs {
		if id == uuid.Nil {
			errs = multierr.Append(errs, errors.New("cart item ids must be non-nil"))
			break
		}
	}
	if errs == nil {
		return nil
	}

	details := make([]string, 0)
	for _, e := range multierr.Errors(errs) {
		details = append(details, e.Error())
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid settlement payload").WithDetails(details)
}
