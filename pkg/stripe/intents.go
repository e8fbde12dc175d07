package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/paymentintent"
)

// Intent is the slice of a Stripe PaymentIntent the API hands back to clients.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// IntentCreator exposes payment-intent creation so handlers can be tested
// against a stub.
type IntentCreator interface {
	CreateIntent(ctx context.Context, priceMajor float64, currency string) (*Intent, error)
}

// MinorUnits converts a major-unit price (dollars) to the provider's
// minor-unit integer (cents), truncating fractional cents. Truncation, not
// rounding, matches the amounts the reference system already charged; changing
// it would shift amounts by a cent for prices like 19.999.
func MinorUnits(priceMajor float64) int64 {
	return int64(priceMajor * 100)
}

// CreateIntent creates a card PaymentIntent for the given major-unit amount.
// Provider failures are returned as-is; intent creation is not idempotent, so
// the caller decides whether to retry.
func (c *Client) CreateIntent(ctx context.Context, priceMajor float64, currency string) (*Intent, error) {
	if c == nil {
		return nil, fmt.Errorf("stripe client not initialized")
	}
	if priceMajor < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if currency == "" {
		currency = c.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(priceMajor)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
