package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// Asegura que CompanyProfileRepo implementa repository.CompanyProfileRepository.
var _ repository.CompanyProfileRepository = (*CompanyProfileRepo)(nil)

// CompanyProfileRepo implementación sobre PostgreSQL (usable con pool o tx).
type CompanyProfileRepo struct {
	q Querier
}

// NewCompanyProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyProfileRepository(q Querier) *CompanyProfileRepo {
	return &CompanyProfileRepo{q: q}
}

const profileColumns = `
	id_perfil, user_id, razon_social, nombre_fantasia, id_direccion,
	estado, verificado, fecha_verificacion, fecha_inicio, created_at`

// Create inserta el perfil y asigna el ID generado. Una violación de los índices
// únicos (user_id, razon_social o nombre_fantasia) se traduce a domain.ErrDuplicate:
// es la guarda autoritativa contra envíos concurrentes con la misma identidad.
func (r *CompanyProfileRepo) Create(ctx context.Context, p *entity.CompanyProfile) error {
	query := `
		INSERT INTO perfil_empresa (user_id, razon_social, nombre_fantasia, id_direccion, estado, verificado, fecha_inicio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_perfil`
	err := r.q.QueryRow(ctx, query,
		p.UserID, p.RazonSocial, p.NombreFantasia, p.AddressID,
		p.Estado, p.Verificado, p.FechaInicio, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: razón social o nombre de fantasía ya registrados", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert perfil_empresa: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *CompanyProfileRepo) GetByID(ctx context.Context, id int64) (*entity.CompanyProfile, error) {
	query := `SELECT` + profileColumns + ` FROM perfil_empresa WHERE id_perfil = $1`
	return r.scanOne(ctx, query, id)
}

// GetByUserID obtiene el perfil de un usuario (user_id es UNIQUE).
func (r *CompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.CompanyProfile, error) {
	query := `SELECT` + profileColumns + ` FROM perfil_empresa WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

// FindByName busca un perfil con la misma razón social O el mismo nombre de fantasía.
func (r *CompanyProfileRepo) FindByName(ctx context.Context, razonSocial, nombreFantasia string) (*entity.CompanyProfile, error) {
	query := `SELECT` + profileColumns + `
		FROM perfil_empresa
		WHERE razon_social = $1 OR nombre_fantasia = $2
		LIMIT 1`
	return r.scanOne(ctx, query, razonSocial, nombreFantasia)
}

// SetVerified marca el perfil como verificado y lo activa.
func (r *CompanyProfileRepo) SetVerified(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE perfil_empresa
		SET verificado = true, fecha_verificacion = $2, estado = $3
		WHERE id_perfil = $1`
	cmd, err := r.q.Exec(ctx, query, id, at, entity.ProfileEstadoActivo)
	if err != nil {
		return fmt.Errorf("set verified: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: perfil de empresa no encontrado", domain.ErrNotFound)
	}
	return nil
}

func (r *CompanyProfileRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.CompanyProfile, error) {
	var p entity.CompanyProfile
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.UserID, &p.RazonSocial, &p.NombreFantasia, &p.AddressID,
		&p.Estado, &p.Verificado, &p.FechaVerificacion, &p.FechaInicio, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil_empresa: %w", err)
	}
	return &p, nil
}
