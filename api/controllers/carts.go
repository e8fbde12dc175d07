package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/api/middleware"
	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/api/validators"
	cartsvc "github.com/lcervantes/bistro-backend/internal/carts"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
)

type addCartItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Image      string    `json:"image"`
	Price      float64   `json:"price" validate:"gte=0"`
}

// ListCart returns the caller's cart lines. The email query parameter must
// match the verified caller; an empty parameter yields an empty list.
func ListCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carts service unavailable"))
			return
		}

		requested, err := validators.ParseQueryEmail(r, "email")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		records, err := svc.ListForOwner(r.Context(), caller, requested)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// AddCartItem stores a new cart line owned by the verified caller. The owner
// is always taken from the claims, never from the body.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carts service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		created, err := svc.Add(r.Context(), caller, cartsvc.AddCartItemInput{
			MenuItemID: payload.MenuItemID,
			Name:       payload.Name,
			Image:      payload.Image,
			Price:      payload.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// RemoveCartItem deletes a single cart line after the ownership check.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carts service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart item id"))
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		if err := svc.Remove(r.Context(), caller, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": true, "id": id})
	}
}
