package repository

import (
	"context"

	"github.com/serviya/serviya-api/internal/domain/entity"
)

// AddressRepository puerto de persistencia para direccion.
type AddressRepository interface {
	// Create inserta la dirección y asigna el ID generado por la base.
	Create(ctx context.Context, addr *entity.Address) error
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
}

// LocationRepository lecturas de referencia geográfica (departamento/ciudad/barrio).
type LocationRepository interface {
	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	ListCitiesByDepartment(ctx context.Context, departmentID int64) ([]*entity.City, error)
	ListNeighborhoodsByCity(ctx context.Context, cityID int64) ([]*entity.Neighborhood, error)
}
