package repository

import (
	"context"
	"time"

	"github.com/serviya/serviya-api/internal/domain/entity"
)

// VerificationRequestRepository puerto de persistencia para verificacion_solicitud.
type VerificationRequestRepository interface {
	// Create inserta la solicitud y asigna el ID generado por la base.
	Create(ctx context.Context, req *entity.VerificationRequest) error
	GetByID(ctx context.Context, id int64) (*entity.VerificationRequest, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.VerificationRequest, error)
	// UpdateDecision aplica la decisión del administrador: estado, fecha de revisión
	// y comentario. No valida transiciones; eso es responsabilidad del caso de uso.
	UpdateDecision(ctx context.Context, id int64, estado string, reviewedAt time.Time, comentario *string) error
}

// DocumentRepository puerto de persistencia para documento.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	ListByRequest(ctx context.Context, requestID int64) ([]*entity.Document, error)
}
