package postgres

import (
	"context"
	"fmt"

	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// Asegura que UserProfileRepo implementa los puertos de perfil y de roles.
var _ repository.UserProfileRepository = (*UserProfileRepo)(nil)

// UserProfileRepo lecturas sobre users/usuario_rol/rol. El alta de usuarios la hace
// el trigger de signup del proveedor de identidad; este adaptador nunca inserta en users.
type UserProfileRepo struct {
	q Querier
}

// NewUserProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserProfileRepository(q Querier) *UserProfileRepo {
	return &UserProfileRepo{q: q}
}

// GetByID obtiene el perfil de un usuario por su uuid.
func (r *UserProfileRepo) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	query := `
		SELECT id, nombre_persona, COALESCE(nombre_empresa, ''), created_at
		FROM users WHERE id = $1`
	var u entity.UserProfile
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.PersonName, &u.CompanyName, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return &u, nil
}

// GetCompanyName devuelve la razón social del perfil, o "" si no existe o no está configurada.
func (r *UserProfileRepo) GetCompanyName(ctx context.Context, userID string) (string, error) {
	query := `SELECT COALESCE(nombre_empresa, '') FROM users WHERE id = $1`
	var name string
	err := r.q.QueryRow(ctx, query, userID).Scan(&name)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get company name: %w", err)
	}
	return name, nil
}

// GetRoles devuelve los nombres de rol del usuario vía la tabla de unión usuario_rol.
func (r *UserProfileRepo) GetRoles(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT r.nombre
		FROM rol r
		JOIN usuario_rol ur ON ur.id_rol = r.id
		WHERE ur.id_usuario = $1`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

// Asegura que RoleRepo implementa repository.RoleRepository.
var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo referencia estática de roles.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT id, nombre, COALESCE(descripcion, '') FROM rol WHERE nombre = $1`
	var role entity.Role
	err := r.q.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// AssignToUser crea la fila en usuario_rol; idempotente si ya existe.
func (r *RoleRepo) AssignToUser(ctx context.Context, userID, roleID string) error {
	query := `
		INSERT INTO usuario_rol (id_usuario, id_rol)
		VALUES ($1, $2)
		ON CONFLICT (id_usuario, id_rol) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, userID, roleID); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}
