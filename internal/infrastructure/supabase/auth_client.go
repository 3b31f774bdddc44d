package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain"
)

// Verificar en tiempo de compilación que AuthClient implementa AuthService.
var _ ports.AuthService = (*AuthClient)(nil)

// AuthClient adaptador del proveedor de identidad sobre la API REST de GoTrue
// (Supabase Auth). Usa net/http de la librería estándar; no requiere SDK.
// El handle es compartido y seguro para uso concurrente.
type AuthClient struct {
	baseURL    string // ej. https://<proyecto>.supabase.co
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient construye el adaptador. baseURL sin slash final.
func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sessionPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type signupPayload struct {
	sessionPayload
	// Cuando la confirmación de email está activa, GoTrue devuelve el usuario al
	// nivel raíz y sin tokens.
	ID    string `json:"id"`
	Email string `json:"email"`
}

type errorPayload struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

// SignUp crea el usuario. Si la confirmación de email está activa no hay sesión y
// PendingConfirmation es true.
func (c *AuthClient) SignUp(ctx context.Context, email, password string) (*ports.SignUpResult, error) {
	body, err := c.post(ctx, "/auth/v1/signup", map[string]string{"email": email, "password": password}, "")
	if err != nil {
		return nil, err
	}
	var p signupPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de signup: %w", err)
	}
	userID := p.ID
	if p.User != nil {
		userID = p.User.ID
	}
	if p.AccessToken == "" {
		return &ports.SignUpResult{PendingConfirmation: true, UserID: userID, Email: email}, nil
	}
	return &ports.SignUpResult{
		Session: &ports.Session{
			AccessToken:  p.AccessToken,
			RefreshToken: p.RefreshToken,
			ExpiresIn:    p.ExpiresIn,
		},
		UserID: userID,
		Email:  email,
	}, nil
}

// SignIn autentica con email y contraseña (grant password).
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*ports.Session, error) {
	return c.tokenGrant(ctx, "password", map[string]string{"email": email, "password": password})
}

// Refresh renueva la sesión (grant refresh_token).
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*ports.Session, error) {
	return c.tokenGrant(ctx, "refresh_token", map[string]string{"refresh_token": refreshToken})
}

func (c *AuthClient) tokenGrant(ctx context.Context, grant string, payload map[string]string) (*ports.Session, error) {
	body, err := c.post(ctx, "/auth/v1/token?grant_type="+grant, payload, "")
	if err != nil {
		return nil, err
	}
	var p sessionPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de sesión: %w", err)
	}
	if p.AccessToken == "" {
		return nil, fmt.Errorf("%w: respuesta de autenticación incompleta", domain.ErrUnauthorized)
	}
	return &ports.Session{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresIn:    p.ExpiresIn,
	}, nil
}

// Logout revoca el refresh token de la sesión del access token dado.
func (c *AuthClient) Logout(ctx context.Context, accessToken string) error {
	_, err := c.post(ctx, "/auth/v1/logout", struct{}{}, accessToken)
	return err
}

// ForgotPassword pide el correo de recuperación. GoTrue responde éxito aunque el
// email no exista, para no permitir enumeración de usuarios.
func (c *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/auth/v1/recover", map[string]string{"email": email}, "")
	return err
}

func (c *AuthClient) post(ctx context.Context, path string, payload any, bearer string) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamada a GoTrue: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta de GoTrue: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, translateError(resp.StatusCode, body)
	}
	return body, nil
}

// translateError traduce los errores comunes de GoTrue a errores de dominio con
// mensaje estable en español; el detalle crudo del proveedor nunca llega al caller.
func translateError(status int, body []byte) error {
	var p errorPayload
	_ = json.Unmarshal(body, &p)
	msg := p.Msg
	if msg == "" {
		msg = p.Message
	}
	if msg == "" {
		msg = p.ErrorDescription
	}

	switch {
	case strings.Contains(msg, "Invalid login credentials"):
		return fmt.Errorf("%w: credenciales de inicio de sesión inválidas", domain.ErrUnauthorized)
	case strings.Contains(msg, "Email not confirmed"):
		return fmt.Errorf("%w: tu email no ha sido confirmado", domain.ErrUnauthorized)
	case strings.Contains(msg, "already registered"):
		return fmt.Errorf("%w: ya existe una cuenta con este email", domain.ErrDuplicate)
	case strings.Contains(msg, "Password should be at least"):
		return fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	case strings.Contains(msg, "Invalid Refresh Token"), strings.Contains(msg, "Refresh Token"):
		return fmt.Errorf("%w: el token de refresco es inválido o expiró", domain.ErrUnauthorized)
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	default:
		return fmt.Errorf("proveedor de identidad respondió %d", status)
	}
}
