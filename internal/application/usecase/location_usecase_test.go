package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviya/serviya-api/internal/application/usecase"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
)

// fakeLocationRepo catálogo geográfico fijo en memoria.
type fakeLocationRepo struct {
	departments   []*entity.Department
	cities        map[int64][]*entity.City
	neighborhoods map[int64][]*entity.Neighborhood
}

func (r *fakeLocationRepo) ListDepartments(context.Context) ([]*entity.Department, error) {
	return r.departments, nil
}

func (r *fakeLocationRepo) ListCitiesByDepartment(_ context.Context, departmentID int64) ([]*entity.City, error) {
	return r.cities[departmentID], nil
}

func (r *fakeLocationRepo) ListNeighborhoodsByCity(_ context.Context, cityID int64) ([]*entity.Neighborhood, error) {
	return r.neighborhoods[cityID], nil
}

func seededRepo() *fakeLocationRepo {
	return &fakeLocationRepo{
		departments: []*entity.Department{
			{ID: 1, Name: "Central"},
			{ID: 2, Name: "Alto Paraná"},
		},
		cities: map[int64][]*entity.City{
			1: {{ID: 10, Name: "Luque", DepartmentID: 1}, {ID: 11, Name: "San Lorenzo", DepartmentID: 1}},
		},
		neighborhoods: map[int64][]*entity.Neighborhood{
			10: {{ID: 100, Name: "Cuarto Barrio", CityID: 10}},
		},
	}
}

func TestListDepartments_DevuelveCatalogo(t *testing.T) {
	uc := usecase.NewLocationUseCase(seededRepo())

	out, err := uc.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].IDDepartamento)
	assert.Equal(t, "Central", out[0].Nombre)
}

func TestListDepartments_CatalogoVacio_RetornaNotFound(t *testing.T) {
	uc := usecase.NewLocationUseCase(&fakeLocationRepo{})

	_, err := uc.ListDepartments(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCities_DepartamentoConCiudades(t *testing.T) {
	uc := usecase.NewLocationUseCase(seededRepo())

	out, err := uc.ListCities(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Luque", out[0].Nombre)
	assert.Equal(t, int64(1), out[0].IDDepartamento)
}

func TestListCities_DepartamentoSinCiudades_RetornaNotFound(t *testing.T) {
	uc := usecase.NewLocationUseCase(seededRepo())

	_, err := uc.ListCities(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un departamento sin ciudades cargadas debe responder 404")
}

func TestListNeighborhoods_CiudadConBarrios(t *testing.T) {
	uc := usecase.NewLocationUseCase(seededRepo())

	out, err := uc.ListNeighborhoods(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cuarto Barrio", out[0].Nombre)
	assert.Equal(t, int64(10), out[0].IDCiudad)
}

func TestListNeighborhoods_CiudadSinBarrios_RetornaNotFound(t *testing.T) {
	uc := usecase.NewLocationUseCase(seededRepo())

	_, err := uc.ListNeighborhoods(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
