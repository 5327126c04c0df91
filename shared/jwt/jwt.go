// Package jwt inspects bearer tokens issued by the Forum API. The client does
// not hold the signing key, so claims are read without verification and used
// only to skip requests that would certainly be rejected.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserId    string
	ExpiresAt time.Time // zero if the token carries no exp claim
}

func Inspect(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("malformed token: %w", err)
	}

	var c Claims
	if id, ok := claims["id"].(string); ok {
		c.UserId = id
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("malformed exp claim: %w", err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Expired reports whether token is a well-formed JWT whose exp is not after
// now. Malformed tokens are not reported as expired; the server decides.
func Expired(token string, now time.Time) bool {
	c, err := Inspect(token)
	if err != nil || c.ExpiresAt.IsZero() {
		return false
	}
	return !c.ExpiresAt.After(now)
}
