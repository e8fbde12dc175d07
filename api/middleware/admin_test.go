package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
	"github.com/lcervantes/bistro-backend/pkg/enums"
)

type stubUserFinder struct {
	user *models.User
	err  error
}

func (s *stubUserFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func adminRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if email != "" {
		req = req.WithContext(WithUserEmail(req.Context(), email))
	}
	return req
}

func TestRequireAdminWithoutClaimsIsUnauthorized(t *testing.T) {
	handlerRan := false
	handler := RequireAdmin(&stubUserFinder{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, adminRequest(""))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if handlerRan {
		t.Fatal("handler must not run without verified claims")
	}
}

func TestRequireAdminRejectsMember(t *testing.T) {
	finder := &stubUserFinder{user: &models.User{Email: "a@b.com", Role: enums.UserRoleMember}}

	handlerRan := false
	handler := RequireAdmin(finder, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, adminRequest("a@b.com"))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
	if handlerRan {
		t.Fatal("handler must not run for a non-admin caller")
	}
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	finder := &stubUserFinder{err: gorm.ErrRecordNotFound}

	handler := RequireAdmin(finder, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, adminRequest("ghost@b.com"))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRequireAdminStoreFailure(t *testing.T) {
	finder := &stubUserFinder{err: errors.New("connection refused")}

	handler := RequireAdmin(finder, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, adminRequest("a@b.com"))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	finder := &stubUserFinder{user: &models.User{Email: "a@b.com", Role: enums.UserRoleAdmin}}

	handler := RequireAdmin(finder, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, adminRequest("a@b.com"))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
