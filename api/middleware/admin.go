package middleware

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/pkg/db/models"
	"github.com/lcervantes/bistro-backend/pkg/enums"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
	"github.com/lcervantes/bistro-backend/pkg/logger"
)

// UserFinder is the slice of the users repository the admin gate needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin gates a route on the stored role of the verified caller. It
// must be composed after Auth; a request that reaches it without verified
// claims is rejected as unauthenticated rather than allowed through.
//
// The user record is re-read on every request so a revoked grant takes effect
// on the very next call. Admin routes are low-frequency, so the extra lookup
// is acceptable.
func RequireAdmin(users UserFinder, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := UserEmailFromContext(r.Context())
			if email == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			if users == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user lookup unavailable"))
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user record"))
				return
			}

			if user.Role != enums.UserRoleAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
