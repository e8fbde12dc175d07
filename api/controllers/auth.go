package controllers

import (
	"net/http"
	"time"

	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/api/validators"
	"github.com/lcervantes/bistro-backend/pkg/auth"
	"github.com/lcervantes/bistro-backend/pkg/config"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
)

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges a client identity for a signed access token. The
// storefront authenticates users upstream; this endpoint only binds the
// asserted identity into a verifiable token.
func IssueToken(cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload issueTokenRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
			Email: payload.Email,
			Name:  payload.Name,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token"))
			return
		}

		responses.WriteSuccess(w, issueTokenResponse{Token: token})
	}
}
