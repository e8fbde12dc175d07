package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Email string
	Name  string
}

// AccessTokenClaims represents the typed JWT issued to clients. The email is
// the only claim downstream gates rely on; the user's role is deliberately
// absent so privilege checks always consult the stored record.
type AccessTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
