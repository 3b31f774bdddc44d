package auth

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/serviya/serviya-api/internal/application/dto"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación. La emisión, firma y revocación de
// tokens la hace el proveedor de identidad (GoTrue); aquí solo se adapta el
// contrato y se da de alta el rol por defecto tras el signup.
type AuthUseCase struct {
	svc   ports.AuthService
	roles repository.RoleRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(svc ports.AuthService, roles repository.RoleRepository) *AuthUseCase {
	return &AuthUseCase{svc: svc, roles: roles}
}

// SignUp crea el usuario en el proveedor de identidad y le asigna el rol Cliente.
// Si el proveedor exige confirmación de email devuelve (nil, pending); si no,
// devuelve la sesión.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.CredentialsRequest) (*dto.TokenResponse, *dto.SignUpPendingResponse, error) {
	result, err := uc.svc.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}
	uc.assignDefaultRole(ctx, result.UserID)
	if result.PendingConfirmation {
		return nil, &dto.SignUpPendingResponse{
			Message: "¡Registro exitoso! Te enviamos un correo para confirmar tu cuenta.",
			Email:   result.Email,
		}, nil
	}
	return toTokenResponse(result.Session), nil, nil
}

// assignDefaultRole da de alta al usuario con el rol Cliente. Un fallo aquí no
// invalida el signup (la cuenta ya existe en el proveedor); se registra y sigue.
func (uc *AuthUseCase) assignDefaultRole(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	role, err := uc.roles.GetByName(ctx, entity.RoleCliente)
	if err == nil && role == nil {
		log.Warn().Str("user_id", userID).Msg("rol Cliente no existe en la referencia de roles")
		return
	}
	if err == nil {
		err = uc.roles.AssignToUser(ctx, userID, role.ID)
	}
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo asignar el rol por defecto")
	}
}

// SignIn autentica con email y contraseña y devuelve los tokens de sesión.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.CredentialsRequest) (*dto.TokenResponse, error) {
	session, err := uc.svc.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	return toTokenResponse(session), nil
}

// Refresh renueva la sesión usando el refresh token.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	session, err := uc.svc.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return toTokenResponse(session), nil
}

// Logout revoca el refresh token de la sesión activa.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	return uc.svc.Logout(ctx, accessToken)
}

// ForgotPassword solicita el correo de restablecimiento de contraseña.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	return uc.svc.ForgotPassword(ctx, email)
}

func toTokenResponse(s *ports.Session) *dto.TokenResponse {
	if s == nil {
		return nil
	}
	return &dto.TokenResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
	}
}
