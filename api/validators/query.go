package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// ParseQueryEmail normalizes the named query parameter into a lowercase email.
// An empty parameter is returned as-is; callers decide whether that is an
// error for their route.
func ParseQueryEmail(r *http.Request, key string) (string, error) {
	raw := strings.TrimSpace(strings.ToLower(r.URL.Query().Get(key)))
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "@") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be an email").WithDetails(map[string]any{"field": key})
	}
	return raw, nil
}
