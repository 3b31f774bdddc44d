package ports

import "context"

// AuthUser identidad mínima devuelta por el proveedor de identidad.
type AuthUser struct {
	ID    string
	Email string
}

// TokenVerifier valida un bearer token y devuelve la identidad del usuario.
// Devuelve domain.ErrUnauthorized si el token es inválido o expiró.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*AuthUser, error)
}
