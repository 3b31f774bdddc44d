package supabase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/infrastructure/supabase"
)

const (
	testSecret = "super-secret-jwt-token-with-at-least-32-characters"
	testSub    = "00000000-0000-0000-0000-000000000001"
	testEmail  = "proveedor@serviya.com"
)

// signToken arma un access token como lo emite GoTrue (HS256, sub + email).
func signToken(t *testing.T, secret string, ttl time.Duration, sub, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
		"aud":   "authenticated",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestVerify_TokenValido_DevuelveIdentidad(t *testing.T) {
	v := supabase.NewTokenVerifier(testSecret)
	tok := signToken(t, testSecret, time.Hour, testSub, testEmail)

	user, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, testSub, user.ID)
	assert.Equal(t, testEmail, user.Email)
}

func TestVerify_TokenExpirado_RetornaUnauthorized(t *testing.T) {
	v := supabase.NewTokenVerifier(testSecret)
	tok := signToken(t, testSecret, -time.Minute, testSub, testEmail)

	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "token expirado debe retornar 401")
}

func TestVerify_SecretIncorrecto_RetornaUnauthorized(t *testing.T) {
	v := supabase.NewTokenVerifier(testSecret)
	tok := signToken(t, "otro-secret-completamente-distinto-de-32-chars", time.Hour, testSub, testEmail)

	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "firma con otro secret debe invalidar el token")
}

func TestVerify_TokenSinSub_RetornaUnauthorized(t *testing.T) {
	v := supabase.NewTokenVerifier(testSecret)
	tok := signToken(t, testSecret, time.Hour, "", testEmail)

	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un token sin sub no identifica a nadie")
}

func TestVerify_TokenMalformado_RetornaUnauthorized(t *testing.T) {
	v := supabase.NewTokenVerifier(testSecret)

	_, err := v.Verify(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
