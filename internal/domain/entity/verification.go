package entity

import "time"

// Estados de una solicitud de verificación. Aprobada y rechazada son terminales.
const (
	SolicitudPendiente = "pendiente"
	SolicitudAprobada  = "aprobada"
	SolicitudRechazada = "rechazada"
)

// VerificationRequest solicitud de verificación de un perfil de empresa
// (tabla verificacion_solicitud). Exactamente una fila por envío del workflow;
// sus documentos se borran en cascada con ella.
type VerificationRequest struct {
	ID             int64
	ProfileID      int64
	Estado         string // pendiente, aprobada, rechazada
	FechaSolicitud time.Time
	FechaRevision  *time.Time // nil hasta que un admin decida
	Comentario     *string
}

// Terminal informa si la solicitud ya fue decidida (no admite más transiciones).
func (v *VerificationRequest) Terminal() bool {
	return v.Estado == SolicitudAprobada || v.Estado == SolicitudRechazada
}

// Document documento probatorio adjunto a una solicitud (tabla documento).
type Document struct {
	ID                int64
	RequestID         int64
	DocumentTypeID    int64
	EstadoRevision    string // pendiente, aprobada, rechazada
	FileURL           string
	Observacion       *string
	FechaVerificacion *time.Time
	CreatedAt         time.Time
}

// DocumentType tipo de documento exigible para la verificación (tabla tipo_documento).
type DocumentType struct {
	ID          int64
	Name        string
	EsRequerido bool
}
