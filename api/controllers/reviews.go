package controllers

import (
	"net/http"

	"github.com/lcervantes/bistro-backend/api/responses"
	reviewsvc "github.com/lcervantes/bistro-backend/internal/reviews"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
)

// ListReviews returns every storefront review. Public.
func ListReviews(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		records, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}
