package auth

import (
	"testing"
	"time"

	"github.com/lcervantes/bistro-backend/pkg/config"
)

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "bistro-backend",
		ExpirationMinutes: 180,
	}
	now := time.Now().UTC()

	payload := AccessTokenPayload{Email: "A@B.com", Name: "Ada"}

	token, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.Email != "a@b.com" {
		t.Fatalf("expected normalized email a@b.com, got %s", claims.Email)
	}
	if claims.Name != "Ada" {
		t.Fatalf("unexpected name %q", claims.Name)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestMintAccessTokenRequiresEmail(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "bistro-backend",
		ExpirationMinutes: 180,
	}
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{Name: "no email"}); err == nil {
		t.Fatal("expected error when email claim is absent")
	}
}

func TestParseAccessTokenInvalidSignature(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "bistro-backend",
		ExpirationMinutes: 10,
	}

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	if _, err = ParseAccessToken(cfg, token+"x"); err == nil {
		t.Fatal("expected invalid signature error")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "bistro-backend",
		ExpirationMinutes: 1,
	}

	// Mint in the past so the token is already expired.
	token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Minute), AccessTokenPayload{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	if _, err = ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token error")
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	mintCfg := config.JWTConfig{Secret: "secret-a", Issuer: "bistro-backend", ExpirationMinutes: 10}
	parseCfg := config.JWTConfig{Secret: "secret-b", Issuer: "bistro-backend", ExpirationMinutes: 10}

	token, err := MintAccessToken(mintCfg, time.Now(), AccessTokenPayload{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	if _, err = ParseAccessToken(parseCfg, token); err == nil {
		t.Fatal("expected signature mismatch error")
	}
}
