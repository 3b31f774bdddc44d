package dto

// DepartamentoResponse departamento para listados de referencia.
type DepartamentoResponse struct {
	IDDepartamento int64  `json:"id_departamento"`
	Nombre         string `json:"nombre"`
}

// CiudadResponse ciudad de un departamento.
type CiudadResponse struct {
	IDCiudad       int64  `json:"id_ciudad"`
	Nombre         string `json:"nombre"`
	IDDepartamento int64  `json:"id_departamento"`
}

// BarrioResponse barrio de una ciudad.
type BarrioResponse struct {
	IDBarrio int64  `json:"id_barrio"`
	Nombre   string `json:"nombre"`
	IDCiudad int64  `json:"id_ciudad"`
}
