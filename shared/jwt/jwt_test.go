package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := sign(t, jwt.MapClaims{"id": "user-1", "exp": exp.Unix()})

	c, err := Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserId)
	assert.True(t, exp.Equal(c.ExpiresAt))
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("token123")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{"valid", sign(t, jwt.MapClaims{"id": "u", "exp": now.Add(time.Hour).Unix()}), false},
		{"expired", sign(t, jwt.MapClaims{"id": "u", "exp": now.Add(-time.Hour).Unix()}), true},
		{"no exp claim", sign(t, jwt.MapClaims{"id": "u", "iat": now.Unix()}), false},
		{"malformed", "not-a-jwt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expired(tt.token, now))
		})
	}
}
