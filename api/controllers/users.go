package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/api/middleware"
	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/api/validators"
	usersvc "github.com/lcervantes/bistro-backend/internal/users"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
)

type registerUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type registerUserResponse struct {
	Created bool             `json:"created"`
	Message string           `json:"message,omitempty"`
	User    *usersvc.UserDTO `json:"user"`
}

// RegisterUser creates a user record, idempotently per email. Registering an
// email that is already on file reports the existing record instead of
// failing.
func RegisterUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var payload registerUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Register(r.Context(), usersvc.RegisterInput{
			Email: payload.Email,
			Name:  payload.Name,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := registerUserResponse{Created: result.Created, User: result.User}
		status := http.StatusCreated
		if !result.Created {
			resp.Message = "user already exists"
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, resp)
	}
}

// ListUsers returns every user record. Admin only.
func ListUsers(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
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

// GrantAdmin promotes the identified user to the admin role. Admin only.
func GrantAdmin(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		if err := svc.GrantAdmin(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"granted": true, "id": id})
	}
}

// CheckAdmin reports whether the named email holds the admin role. A caller
// may only query their own email.
func CheckAdmin(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		caller := middleware.UserEmailFromContext(r.Context())
		target := chi.URLParam(r, "email")

		isAdmin, err := svc.IsAdmin(r.Context(), caller, target)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"admin": isAdmin})
	}
}
