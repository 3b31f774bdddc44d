package entity

import "time"

// Nombres de rol conocidos (tabla rol; reference data estática).
const (
	RoleAdmin   = "admin"
	RoleCliente = "Cliente"
)

// UserProfile representa el perfil de un usuario en la tabla users.
// El ID coincide con auth.users.id del proveedor de identidad; el alta la hace
// el trigger de signup, este servicio nunca crea ni borra usuarios.
type UserProfile struct {
	ID          string // uuid, igual al id del proveedor de identidad
	PersonName  string
	CompanyName string // razón social declarada al registrarse; vacío si no se configuró
	CreatedAt   time.Time
}

// Role rol del sistema (ej. "Cliente", "admin").
type Role struct {
	ID          string // uuid
	Name        string
	Description string
}

// UserRole fila de la tabla de unión usuario_rol (clave compuesta).
type UserRole struct {
	UserID string
	RoleID string
}
