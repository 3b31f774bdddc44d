package supabase

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain"
)

// Verificar en tiempo de compilación que TokenVerifier implementa el puerto.
var _ ports.TokenVerifier = (*TokenVerifier)(nil)

// TokenVerifier valida localmente los access tokens de Supabase Auth. GoTrue firma
// con HS256 usando el JWT secret del proyecto, así que no hace falta una llamada de
// red por request: sub es el id del usuario y email su correo.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier construye el verificador con el JWT secret del proyecto.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Verify valida firma y expiración y devuelve la identidad del usuario.
// Devuelve domain.ErrUnauthorized ante cualquier token inválido.
func (v *TokenVerifier) Verify(_ context.Context, tokenString string) (*ports.AuthUser, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("token verifier: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: token inválido o expirado", domain.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: claims inválidos", domain.ErrUnauthorized)
	}
	return &ports.AuthUser{ID: claims.Subject, Email: claims.Email}, nil
}
