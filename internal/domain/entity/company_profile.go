package entity

import "time"

// Estados válidos para CompanyProfile.
const (
	ProfileEstadoPendiente = "pendiente"
	ProfileEstadoActivo    = "activo"
	ProfileEstadoInactivo  = "inactivo"
)

// CompanyProfile representa el perfil de empresa de un proveedor (tabla perfil_empresa).
// Un usuario tiene como máximo un perfil (user_id UNIQUE). La razón social y el
// nombre de fantasía participan ambos en el invariante de unicidad: no puede existir
// otro perfil activo/pendiente con la misma razón social O el mismo nombre de fantasía.
// Verificado y Estado solo los muta el flujo de revisión administrativa.
type CompanyProfile struct {
	ID                int64
	UserID            string // uuid del dueño
	RazonSocial       string // identidad legal registrada; se resuelve del perfil del usuario, nunca del request
	NombreFantasia    string // nombre comercial
	AddressID         int64
	Estado            string // pendiente, activo, inactivo
	Verificado        bool
	FechaVerificacion *time.Time // nil mientras no esté verificado
	FechaInicio       time.Time
	CreatedAt         time.Time
}
