package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// Asegura que VerificationRequestRepo implementa el puerto.
var _ repository.VerificationRequestRepository = (*VerificationRequestRepo)(nil)

// VerificationRequestRepo implementación sobre PostgreSQL (usable con pool o tx).
type VerificationRequestRepo struct {
	q Querier
}

// NewVerificationRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVerificationRequestRepository(q Querier) *VerificationRequestRepo {
	return &VerificationRequestRepo{q: q}
}

// Create inserta la solicitud y asigna el ID generado por la base.
func (r *VerificationRequestRepo) Create(ctx context.Context, req *entity.VerificationRequest) error {
	query := `
		INSERT INTO verificacion_solicitud (id_perfil, estado, fecha_solicitud, comentario)
		VALUES ($1, $2, $3, $4)
		RETURNING id_verificacion`
	err := r.q.QueryRow(ctx, query, req.ProfileID, req.Estado, req.FechaSolicitud, req.Comentario).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert verificacion_solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *VerificationRequestRepo) GetByID(ctx context.Context, id int64) (*entity.VerificationRequest, error) {
	query := `
		SELECT id_verificacion, id_perfil, estado, fecha_solicitud, fecha_revision, comentario
		FROM verificacion_solicitud WHERE id_verificacion = $1`
	var v entity.VerificationRequest
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProfileID, &v.Estado, &v.FechaSolicitud, &v.FechaRevision, &v.Comentario,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verificacion_solicitud: %w", err)
	}
	return &v, nil
}

// ListByEstado lista solicitudes por estado, más antiguas primero.
func (r *VerificationRequestRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.VerificationRequest, error) {
	query := `
		SELECT id_verificacion, id_perfil, estado, fecha_solicitud, fecha_revision, comentario
		FROM verificacion_solicitud WHERE estado = $1
		ORDER BY fecha_solicitud ASC`
	rows, err := r.q.Query(ctx, query, estado)
	if err != nil {
		return nil, fmt.Errorf("list verificacion_solicitud: %w", err)
	}
	defer rows.Close()

	var list []*entity.VerificationRequest
	for rows.Next() {
		var v entity.VerificationRequest
		if err := rows.Scan(&v.ID, &v.ProfileID, &v.Estado, &v.FechaSolicitud, &v.FechaRevision, &v.Comentario); err != nil {
			return nil, fmt.Errorf("scan verificacion_solicitud: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// UpdateDecision aplica la decisión del administrador sobre la solicitud.
func (r *VerificationRequestRepo) UpdateDecision(ctx context.Context, id int64, estado string, reviewedAt time.Time, comentario *string) error {
	query := `
		UPDATE verificacion_solicitud
		SET estado = $2, fecha_revision = $3, comentario = $4
		WHERE id_verificacion = $1`
	cmd, err := r.q.Exec(ctx, query, id, estado, reviewedAt, comentario)
	if err != nil {
		return fmt.Errorf("update verificacion_solicitud: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: solicitud no encontrada", domain.ErrNotFound)
	}
	return nil
}

// Asegura que DocumentRepo implementa repository.DocumentRepository.
var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create inserta un documento y asigna el ID generado por la base.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documento (id_verificacion, id_tip_documento, estado_revision, url_archivo, observacion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_documento`
	err := r.q.QueryRow(ctx, query,
		doc.RequestID, doc.DocumentTypeID, doc.EstadoRevision, doc.FileURL, doc.Observacion, doc.CreatedAt,
	).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// ListByRequest lista los documentos de una solicitud en orden de carga.
func (r *DocumentRepo) ListByRequest(ctx context.Context, requestID int64) ([]*entity.Document, error) {
	query := `
		SELECT id_documento, id_verificacion, id_tip_documento, estado_revision, url_archivo, observacion, fecha_verificacion, created_at
		FROM documento WHERE id_verificacion = $1
		ORDER BY id_documento ASC`
	rows, err := r.q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.RequestID, &d.DocumentTypeID, &d.EstadoRevision, &d.FileURL, &d.Observacion, &d.FechaVerificacion, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
