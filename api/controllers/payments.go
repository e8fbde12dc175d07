package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/api/middleware"
	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/api/validators"
	paymentsvc "github.com/lcervantes/bistro-backend/internal/payments"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
	"github.com/lcervantes/bistro-backend/pkg/stripe"
)

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type settlePaymentRequest struct {
	Price         float64     `json:"price" validate:"required,gt=0"`
	TransactionID string      `json:"transaction_id" validate:"required"`
	CartItemIDs   []uuid.UUID `json:"cart_item_ids" validate:"required,min=1"`
	MenuItemIDs   []uuid.UUID `json:"menu_item_ids"`
}

// CreatePaymentIntent asks the payment provider for a client secret covering
// the given major-unit price. Provider failures surface as-is with a
// payment-provider error code; the handler never retries.
func CreatePaymentIntent(creator stripe.IntentCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if creator == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment provider unavailable"))
			return
		}

		var payload createIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		intent, err := creator.CreateIntent(r.Context(), payload.Price, "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodePaymentProvider, err, "create payment intent"))
			return
		}
		responses.WriteSuccess(w, createIntentResponse{ClientSecret: intent.ClientSecret})
	}
}

// ListPayments returns the verified caller's settled payments, newest first.
func ListPayments(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable"))
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		records, err := svc.History(r.Context(), caller)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// SettlePayment records a client-confirmed payment and clears the settled
// cart lines in one transaction. The payer is always the verified caller.
func SettlePayment(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable"))
			return
		}

		var payload settlePaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		result, err := svc.Settle(r.Context(), caller, paymentsvc.SettleInput{
			Price:         payload.Price,
			TransactionID: payload.TransactionID,
			CartItemIDs:   payload.CartItemIDs,
			MenuItemIDs:   payload.MenuItemIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
