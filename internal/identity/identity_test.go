package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestFromToken(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":  float64(7),
		"name": "Marina",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	id, err := FromToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id.UserID)
	assert.Equal(t, "Marina", id.Name)
	assert.Equal(t, "admin", id.Role)
}

func TestFromTokenRejectsBadSignature(t *testing.T) {
	signed := signToken(t, "outro-segredo", jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := FromToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromTokenRejectsExpired(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := FromToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromTokenRequiresSubject(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"name": "sem sub",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	_, err := FromToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromTokenUnverified(t *testing.T) {
	// Assinado com segredo desconhecido do cliente: a extração para
	// exibição funciona mesmo assim.
	signed := signToken(t, "segredo-do-servidor", jwt.MapClaims{
		"sub":  float64(3),
		"name": "Paula",
		"role": "operator",
	})

	id, err := FromTokenUnverified(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(3), id.UserID)
	assert.Equal(t, "Paula", id.Name)
	assert.Equal(t, "operator", id.Role)

	_, err = FromTokenUnverified("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
