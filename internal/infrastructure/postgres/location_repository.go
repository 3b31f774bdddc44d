package postgres

import (
	"context"
	"fmt"

	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// Asegura que AddressRepo implementa repository.AddressRepository.
var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación sobre PostgreSQL (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Create inserta la dirección y asigna el ID generado. Las coordenadas se guardan
// como punto PostGIS con SRID 4326 (lng lat).
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO direccion (calle, numero, referencia, coordenadas, id_barrio, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7)
		RETURNING id_direccion`
	err := r.q.QueryRow(ctx, query,
		a.Calle, a.Numero, a.Referencia, a.Lng, a.Lat, a.NeighborhoodID, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert direccion: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	query := `
		SELECT id_direccion, calle, numero, referencia, ST_X(coordenadas), ST_Y(coordenadas), id_barrio, created_at
		FROM direccion WHERE id_direccion = $1`
	var a entity.Address
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Calle, &a.Numero, &a.Referencia, &a.Lng, &a.Lat, &a.NeighborhoodID, &a.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get direccion: %w", err)
	}
	return &a, nil
}

// Asegura que LocationRepo implementa repository.LocationRepository.
var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo lecturas de referencia geográfica.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ListDepartments lista todos los departamentos.
func (r *LocationRepo) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.q.Query(ctx, `SELECT id_departamento, nombre FROM departamento ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListCitiesByDepartment lista las ciudades de un departamento.
func (r *LocationRepo) ListCitiesByDepartment(ctx context.Context, departmentID int64) ([]*entity.City, error) {
	query := `SELECT id_ciudad, nombre, id_departamento FROM ciudad WHERE id_departamento = $1 ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list ciudades: %w", err)
	}
	defer rows.Close()

	var list []*entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.DepartmentID); err != nil {
			return nil, fmt.Errorf("scan ciudad: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListNeighborhoodsByCity lista los barrios de una ciudad.
func (r *LocationRepo) ListNeighborhoodsByCity(ctx context.Context, cityID int64) ([]*entity.Neighborhood, error) {
	query := `SELECT id_barrio, nombre, id_ciudad FROM barrio WHERE id_ciudad = $1 ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, cityID)
	if err != nil {
		return nil, fmt.Errorf("list barrios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Neighborhood
	for rows.Next() {
		var b entity.Neighborhood
		if err := rows.Scan(&b.ID, &b.Name, &b.CityID); err != nil {
			return nil, fmt.Errorf("scan barrio: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
