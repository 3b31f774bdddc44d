package ports

import "context"

// RoleProvider resuelve el conjunto de roles de un usuario. Se separa del
// repositorio completo para que la puerta de autorización sea testeable con un fake.
type RoleProvider interface {
	GetRoles(ctx context.Context, userID string) ([]string, error)
}
