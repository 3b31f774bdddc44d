package repository

import (
	"context"
	"time"

	"github.com/serviya/serviya-api/internal/domain/entity"
)

// CompanyProfileRepository define el puerto de persistencia para PerfilEmpresa.
type CompanyProfileRepository interface {
	// Create inserta el perfil y asigna el ID generado por la base.
	Create(ctx context.Context, profile *entity.CompanyProfile) error
	GetByID(ctx context.Context, id int64) (*entity.CompanyProfile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.CompanyProfile, error)
	// FindByName busca un perfil cuya razón social sea razonSocial O cuyo nombre de
	// fantasía sea nombreFantasia. nil si no existe ninguno.
	FindByName(ctx context.Context, razonSocial, nombreFantasia string) (*entity.CompanyProfile, error)
	// SetVerified marca el perfil como verificado y lo activa (decisión de aprobación).
	SetVerified(ctx context.Context, id int64, at time.Time) error
}
