package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/serviya/serviya-api/internal/application/dto"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// ReviewTxRunner ejecuta la decisión administrativa dentro de una transacción:
// la solicitud y el perfil de empresa se actualizan como una sola unidad, de modo
// que ningún lector observe estado=aprobada con verificado=false.
type ReviewTxRunner interface {
	RunReview(ctx context.Context, fn func(
		requestRepo repository.VerificationRequestRepository,
		profileRepo repository.CompanyProfileRepository,
	) error) error
}

// ReviewUseCase máquina de estados de revisión administrativa:
// pendiente → aprobada | rechazada. Aprobada y rechazada son terminales: repetir la
// misma decisión es un no-op idempotente y la decisión contraria devuelve ErrConflict.
// Toda operación exige el rol admin antes de cualquier mutación.
type ReviewUseCase struct {
	txRunner    ReviewTxRunner
	roles       ports.RoleProvider
	requestRepo repository.VerificationRequestRepository
	profileRepo repository.CompanyProfileRepository
	docRepo     repository.DocumentRepository
}

// NewReviewUseCase construye el caso de uso de revisión.
func NewReviewUseCase(
	txRunner ReviewTxRunner,
	roles ports.RoleProvider,
	requestRepo repository.VerificationRequestRepository,
	profileRepo repository.CompanyProfileRepository,
	docRepo repository.DocumentRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		txRunner:    txRunner,
		roles:       roles,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		docRepo:     docRepo,
	}
}

// requireAdmin verifica que el caller tenga el rol admin. Precondición de todo el
// componente, no de cada transición.
func (uc *ReviewUseCase) requireAdmin(ctx context.Context, userID string) error {
	roles, err := uc.roles.GetRoles(ctx, userID)
	if err != nil {
		return err
	}
	for _, r := range roles {
		if r == entity.RoleAdmin {
			return nil
		}
	}
	return fmt.Errorf("%w: se requiere el rol admin", domain.ErrForbidden)
}

// Approve aprueba una solicitud pendiente: estado=aprobada, fecha de revisión y
// comentario en la solicitud, y verificado=true + estado activo en el perfil.
// Ambas mutaciones comparten una transacción.
func (uc *ReviewUseCase) Approve(ctx context.Context, adminID string, requestID int64, comentario *string) error {
	return uc.decide(ctx, adminID, requestID, entity.SolicitudAprobada, comentario)
}

// Reject rechaza una solicitud pendiente. El perfil de empresa no se toca: queda
// sin verificar, en su estado previo.
func (uc *ReviewUseCase) Reject(ctx context.Context, adminID string, requestID int64, comentario *string) error {
	return uc.decide(ctx, adminID, requestID, entity.SolicitudRechazada, comentario)
}

func (uc *ReviewUseCase) decide(ctx context.Context, adminID string, requestID int64, estado string, comentario *string) error {
	if err := uc.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	return uc.txRunner.RunReview(ctx, func(
		requestRepo repository.VerificationRequestRepository,
		profileRepo repository.CompanyProfileRepository,
	) error {
		req, err := requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: solicitud no encontrada", domain.ErrNotFound)
		}
		if req.Terminal() {
			if req.Estado == estado {
				// Misma decisión repetida: no-op idempotente.
				return nil
			}
			return fmt.Errorf("%w: la solicitud ya fue %s", domain.ErrConflict, req.Estado)
		}

		now := time.Now()
		if err := requestRepo.UpdateDecision(ctx, requestID, estado, now, comentario); err != nil {
			return err
		}

		if estado != entity.SolicitudAprobada {
			return nil
		}

		// La aprobación se propaga al perfil: verificado=true y activación.
		profile, err := profileRepo.GetByID(ctx, req.ProfileID)
		if err != nil {
			return err
		}
		if profile == nil {
			// No debería ocurrir con las FKs en cascada; se trata como violación de
			// integridad y aborta la transacción completa.
			return fmt.Errorf("%w: perfil de empresa no encontrado", domain.ErrNotFound)
		}
		return profileRepo.SetVerified(ctx, profile.ID, now)
	})
}

// ListPending devuelve todas las solicitudes pendientes de revisión.
func (uc *ReviewUseCase) ListPending(ctx context.Context, adminID string) ([]dto.VerificationResponse, error) {
	if err := uc.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	reqs, err := uc.requestRepo.ListByEstado(ctx, entity.SolicitudPendiente)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VerificationResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toVerificationResponse(r))
	}
	return out, nil
}

// GetDetail devuelve una solicitud con su perfil de empresa y documentos.
func (uc *ReviewUseCase) GetDetail(ctx context.Context, adminID string, requestID int64) (*dto.VerificationDetailResponse, error) {
	if err := uc.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud no encontrada", domain.ErrNotFound)
	}
	profile, err := uc.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: perfil de empresa no encontrado", domain.ErrNotFound)
	}
	docs, err := uc.docRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.VerificationDetailResponse{
		VerificationResponse: toVerificationResponse(req),
		Perfil: dto.CompanyProfileResponse{
			IDPerfil:          profile.ID,
			UserID:            profile.UserID,
			RazonSocial:       profile.RazonSocial,
			NombreFantasia:    profile.NombreFantasia,
			Estado:            profile.Estado,
			Verificado:        profile.Verificado,
			FechaVerificacion: profile.FechaVerificacion,
		},
		Documentos: make([]dto.DocumentResponse, 0, len(docs)),
	}
	for _, d := range docs {
		detail.Documentos = append(detail.Documentos, dto.DocumentResponse{
			IDDocumento:    d.ID,
			IDTipDocumento: d.DocumentTypeID,
			EstadoRevision: d.EstadoRevision,
			URLArchivo:     d.FileURL,
			Observacion:    d.Observacion,
		})
	}
	return detail, nil
}

func toVerificationResponse(r *entity.VerificationRequest) dto.VerificationResponse {
	return dto.VerificationResponse{
		IDVerificacion: r.ID,
		IDPerfil:       r.ProfileID,
		Estado:         r.Estado,
		FechaSolicitud: r.FechaSolicitud,
		FechaRevision:  r.FechaRevision,
		Comentario:     r.Comentario,
	}
}
