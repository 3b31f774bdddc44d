package repository

import (
	"context"

	"github.com/serviya/serviya-api/internal/domain/entity"
)

// UserProfileRepository define el puerto de persistencia para UserProfile (DIP).
// Los usuarios los crea el proveedor de identidad; aquí solo se leen.
type UserProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
	// GetCompanyName devuelve la razón social configurada en el perfil del usuario,
	// o cadena vacía si el perfil no existe o no la tiene.
	GetCompanyName(ctx context.Context, userID string) (string, error)
	// GetRoles devuelve el conjunto de nombres de rol del usuario (vía usuario_rol).
	GetRoles(ctx context.Context, userID string) ([]string, error)
}

// RoleRepository puerto para la referencia estática de roles.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	// AssignToUser crea la fila en usuario_rol; idempotente si ya existe.
	AssignToUser(ctx context.Context, userID, roleID string) error
}
