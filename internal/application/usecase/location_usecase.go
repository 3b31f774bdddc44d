package usecase

import (
	"context"
	"fmt"

	"github.com/serviya/serviya-api/internal/application/dto"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// LocationUseCase lecturas de referencia geográfica (departamento/ciudad/barrio).
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso de ubicaciones.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// ListDepartments devuelve todos los departamentos. ErrNotFound si no hay ninguno.
func (uc *LocationUseCase) ListDepartments(ctx context.Context) ([]dto.DepartamentoResponse, error) {
	deps, err := uc.repo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if len(deps) == 0 {
		return nil, fmt.Errorf("%w: no se encontraron departamentos", domain.ErrNotFound)
	}
	out := make([]dto.DepartamentoResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.DepartamentoResponse{IDDepartamento: d.ID, Nombre: d.Name})
	}
	return out, nil
}

// ListCities devuelve las ciudades de un departamento. ErrNotFound si no hay ninguna.
func (uc *LocationUseCase) ListCities(ctx context.Context, departmentID int64) ([]dto.CiudadResponse, error) {
	cities, err := uc.repo.ListCitiesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: no se encontraron ciudades para el departamento %d", domain.ErrNotFound, departmentID)
	}
	out := make([]dto.CiudadResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, dto.CiudadResponse{IDCiudad: c.ID, Nombre: c.Name, IDDepartamento: c.DepartmentID})
	}
	return out, nil
}

// ListNeighborhoods devuelve los barrios de una ciudad. ErrNotFound si no hay ninguno.
func (uc *LocationUseCase) ListNeighborhoods(ctx context.Context, cityID int64) ([]dto.BarrioResponse, error) {
	barrios, err := uc.repo.ListNeighborhoodsByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if len(barrios) == 0 {
		return nil, fmt.Errorf("%w: no se encontraron barrios para la ciudad %d", domain.ErrNotFound, cityID)
	}
	out := make([]dto.BarrioResponse, 0, len(barrios))
	for _, b := range barrios {
		out = append(out, dto.BarrioResponse{IDBarrio: b.ID, Nombre: b.Name, IDCiudad: b.CityID})
	}
	return out, nil
}
