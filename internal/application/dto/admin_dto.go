package dto

import "time"

// DecisionRequest comentario opcional del administrador al aprobar o rechazar.
type DecisionRequest struct {
	Comentario *string `json:"comentario"`
}

// VerificationResponse proyección de una solicitud de verificación.
type VerificationResponse struct {
	IDVerificacion int64      `json:"id_verificacion"`
	IDPerfil       int64      `json:"id_perfil"`
	Estado         string     `json:"estado"`
	FechaSolicitud time.Time  `json:"fecha_solicitud"`
	FechaRevision  *time.Time `json:"fecha_revision"`
	Comentario     *string    `json:"comentario"`
}

// DocumentResponse proyección de un documento adjunto.
type DocumentResponse struct {
	IDDocumento    int64   `json:"id_documento"`
	IDTipDocumento int64   `json:"id_tip_documento"`
	EstadoRevision string  `json:"estado_revision"`
	URLArchivo     string  `json:"url_archivo"`
	Observacion    *string `json:"observacion"`
}

// CompanyProfileResponse proyección del perfil de empresa.
type CompanyProfileResponse struct {
	IDPerfil          int64      `json:"id_perfil"`
	UserID            string     `json:"user_id"`
	RazonSocial       string     `json:"razon_social"`
	NombreFantasia    string     `json:"nombre_fantasia"`
	Estado            string     `json:"estado"`
	Verificado        bool       `json:"verificado"`
	FechaVerificacion *time.Time `json:"fecha_verificacion"`
}

// VerificationDetailResponse solicitud con su perfil y documentos.
type VerificationDetailResponse struct {
	VerificationResponse
	Perfil     CompanyProfileResponse `json:"perfil_empresa"`
	Documentos []DocumentResponse     `json:"documentos"`
}
