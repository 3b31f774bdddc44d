package dto

// SubmitVerificationResponse confirmación del registro de perfil + solicitud.
type SubmitVerificationResponse struct {
	Message        string `json:"message"`
	IDVerificacion int64  `json:"id_verificacion"`
	IDPerfil       int64  `json:"id_perfil"`
}
