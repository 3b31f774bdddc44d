package dto

// CredentialsRequest email y contraseña para signup/signin.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse tokens de sesión emitidos por el proveedor de identidad.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignUpPendingResponse alta exitosa que requiere confirmación de email.
type SignUpPendingResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// RefreshRequest cuerpo para refrescar la sesión.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// EmailOnlyRequest cuerpo para forgot-password.
type EmailOnlyRequest struct {
	Email string `json:"email"`
}

// UserResponse identidad del usuario autenticado.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
