package ports

import "context"

// Session tokens emitidos por el proveedor de identidad.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// SignUpResult resultado de un alta: si el proveedor exige confirmación de email,
// Session es nil y PendingConfirmation es true. UserID es el uuid asignado por el
// proveedor de identidad.
type SignUpResult struct {
	Session             *Session
	PendingConfirmation bool
	UserID              string
	Email               string
}

// AuthService operaciones delegadas al proveedor de identidad (GoTrue).
// La emisión y firma de tokens es responsabilidad del proveedor, no de este servicio.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	Logout(ctx context.Context, accessToken string) error
	// ForgotPassword pide el correo de recuperación. Responde éxito aunque el email
	// no exista, para no permitir enumeración de usuarios.
	ForgotPassword(ctx context.Context, email string) error
}
