package provider

import (
	"context"

	"github.com/serviya/serviya-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el flujo de verificación: dirección,
// perfil, solicitud y documentos se confirman o revierten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		addressRepo repository.AddressRepository,
		profileRepo repository.CompanyProfileRepository,
		requestRepo repository.VerificationRequestRepository,
		documentRepo repository.DocumentRepository,
	) error) error
}
