package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

func newTestMenuService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(NewRepository(setupMenuTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestServiceCreateValidatesInput(t *testing.T) {
	svc := newTestMenuService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateMenuItemInput
	}{
		{"missing name", CreateMenuItemInput{Category: "pizza", Price: 10}},
		{"negative price", CreateMenuItemInput{Name: "Cake", Category: "dessert", Price: -1}},
		{"unknown category", CreateMenuItemInput{Name: "Cake", Category: "tapas", Price: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			require.Error(t, err)
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
		})
	}
}

func TestServiceCreateNormalizesCategory(t *testing.T) {
	svc := newTestMenuService(t)

	created, err := svc.Create(context.Background(), CreateMenuItemInput{
		Name:     "Tiramisu",
		Category: " Dessert ",
		Price:    7.77,
	})
	require.NoError(t, err)
	assert.Equal(t, "dessert", string(created.Category))
}

func TestServiceDeleteUnknownItem(t *testing.T) {
	svc := newTestMenuService(t)

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
