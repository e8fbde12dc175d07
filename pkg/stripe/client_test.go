package stripe

import (
	"context"
	"testing"

	"github.com/lcervantes/bistro-backend/pkg/config"
)

func TestNewClientValidatesKeyAgainstEnv(t *testing.T) {
	ctx := context.Background()

	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "", Env: "test"}, nil); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_live_abc", Env: "test"}, nil); err == nil {
		t.Fatal("expected error for live key in test env")
	}
	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_test_abc", Env: "staging"}, nil); err == nil {
		t.Fatal("expected error for unknown env")
	}

	client, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_test_abc", Env: "test"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("unexpected environment %q", client.Environment())
	}
	if client.Currency() != "usd" {
		t.Fatalf("expected default currency usd, got %q", client.Currency())
	}
}

func TestMinorUnitsTruncates(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 19.999, want: 1999},
		{price: 25.50, want: 2550},
		{price: 0, want: 0},
		{price: 0.009, want: 0},
		{price: 10, want: 1000},
		{price: 7.77, want: 777},
	}

	for _, tt := range tests {
		if got := MinorUnits(tt.price); got != tt.want {
			t.Fatalf("MinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}
