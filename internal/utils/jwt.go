package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenClaims is returned when a token's claims cannot be read.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// TokenClaims holds the registered claims the client cares about.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp lies before now. A token without
// exp never expires.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// ReadTokenClaims reads sub and exp from an access token WITHOUT verifying
// its signature. The client holds no signing key; the result is only fit
// for display and logging. The server remains the authority on validity.
func ReadTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidTokenClaims, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidTokenClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidTokenClaims, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidTokenClaims, err)
	}

	result := TokenClaims{Subject: sub}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}
	return result, nil
}
