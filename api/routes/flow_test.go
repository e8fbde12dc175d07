package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/lcervantes/bistro-backend/internal/carts"
	paymentsvc "github.com/lcervantes/bistro-backend/internal/payments"
	usersvc "github.com/lcervantes/bistro-backend/internal/users"
	"github.com/lcervantes/bistro-backend/pkg/config"
	"github.com/lcervantes/bistro-backend/pkg/db"
	"github.com/lcervantes/bistro-backend/pkg/stripe"
)

// recordingIntentCreator captures the minor-unit amount sent to the provider.
type recordingIntentCreator struct {
	lastAmount int64
}

func (r *recordingIntentCreator) CreateIntent(ctx context.Context, priceMajor float64, currency string) (*stripe.Intent, error) {
	r.lastAmount = stripe.MinorUnits(priceMajor)
	return &stripe.Intent{ClientSecret: "cs_test_secret", Amount: r.lastAmount}, nil
}

func setupFlowRouter(t *testing.T) (http.Handler, *recordingIntentCreator) {
	t.Helper()

	dsn := fmt.Sprintf("file:flow_%s?mode=memory&cache=shared", uuid.NewString()[:8])
	dbClient, err := db.New(context.Background(), config.DBConfig{Driver: "sqlite", DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbClient.Close() })

	schemas := []string{
		`CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'member',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE cart_items (
  id TEXT PRIMARY KEY,
  owner_email TEXT NOT NULL,
  menu_item_id TEXT NOT NULL,
  name TEXT NOT NULL,
  image TEXT,
  price REAL NOT NULL,
  created_at DATETIME
);`,
		`CREATE TABLE payments (
  id TEXT PRIMARY KEY,
  payer_email TEXT NOT NULL,
  price REAL NOT NULL,
  transaction_id TEXT NOT NULL,
  cart_item_ids TEXT NOT NULL DEFAULT '{}',
  menu_item_ids TEXT NOT NULL DEFAULT '{}',
  status TEXT NOT NULL DEFAULT 'paid',
  created_at DATETIME
);`,
	}
	for _, schema := range schemas {
		require.NoError(t, dbClient.DB().Exec(schema).Error)
	}

	usersRepo := usersvc.NewRepository(dbClient.DB())
	usersService, err := usersvc.NewService(usersRepo)
	require.NoError(t, err)

	cartsRepo := cartsvc.NewRepository(dbClient.DB())
	cartsService, err := cartsvc.NewService(cartsRepo)
	require.NoError(t, err)

	paymentsService, err := paymentsvc.NewService(dbClient, paymentsvc.NewRepository(dbClient.DB()), cartsRepo)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}

	intents := &recordingIntentCreator{}
	router := NewRouter(
		cfg,
		nil,
		nil,
		nil,
		nil,
		usersRepo,
		usersService,
		stubMenuService{},
		stubReviewsService{},
		cartsService,
		paymentsService,
		stubStatsService{},
		intents,
	)
	return router, intents
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

func TestCheckoutFlow(t *testing.T) {
	router, intents := setupFlowRouter(t)
	email := "diner@example.com"

	// register
	resp := doJSON(t, router, http.MethodPost, "/users", "", map[string]string{
		"email": email,
		"name":  "Diner",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	// issue token
	resp = doJSON(t, router, http.MethodPost, "/jwt", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, resp.Code)
	var tokenBody struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &tokenBody)
	require.NotEmpty(t, tokenBody.Token)
	token := tokenBody.Token

	// add two cart lines
	menuA, menuB := uuid.New(), uuid.New()
	for _, line := range []map[string]any{
		{"menu_item_id": menuA, "name": "Pizza", "price": 12.50},
		{"menu_item_id": menuB, "name": "Salad", "price": 13.00},
	} {
		resp = doJSON(t, router, http.MethodPost, "/carts", token, line)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/carts?email="+email, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var cartLines []struct {
		ID uuid.UUID `json:"id"`
	}
	decodeData(t, resp, &cartLines)
	require.Len(t, cartLines, 2)

	// payment intent for the cart total
	resp = doJSON(t, router, http.MethodPost, "/create-payment-intent", token, map[string]any{"price": 25.50})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(2550), intents.lastAmount)
	var intentBody struct {
		ClientSecret string `json:"clientSecret"`
	}
	decodeData(t, resp, &intentBody)
	assert.Equal(t, "cs_test_secret", intentBody.ClientSecret)

	// settle both lines
	resp = doJSON(t, router, http.MethodPost, "/payments", token, map[string]any{
		"price":          25.50,
		"transaction_id": "pi_flow",
		"cart_item_ids":  []uuid.UUID{cartLines[0].ID, cartLines[1].ID},
		"menu_item_ids":  []uuid.UUID{menuA, menuB},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var settleBody struct {
		RemovedCount int64 `json:"removed_count"`
	}
	decodeData(t, resp, &settleBody)
	assert.Equal(t, int64(2), settleBody.RemovedCount)

	// cart is empty afterwards
	resp = doJSON(t, router, http.MethodGet, "/carts?email="+email, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var remaining []struct {
		ID uuid.UUID `json:"id"`
	}
	decodeData(t, resp, &remaining)
	assert.Empty(t, remaining)

	// payment history shows the settlement
	resp = doJSON(t, router, http.MethodGet, "/payments", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var history []struct {
		TransactionID string `json:"transaction_id"`
	}
	decodeData(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "pi_flow", history[0].TransactionID)
}
