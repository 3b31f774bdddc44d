package entity

import "time"

// Department departamento del país (tabla departamento). Reference data.
type Department struct {
	ID   int64
	Name string
}

// City ciudad de un departamento (tabla ciudad).
type City struct {
	ID           int64
	Name         string
	DepartmentID int64
}

// Neighborhood barrio de una ciudad (tabla barrio).
type Neighborhood struct {
	ID     int64
	Name   string
	CityID int64
}

// Address dirección con coordenadas geográficas (tabla direccion).
// Se crea una vez por envío de verificación y no se muta después.
type Address struct {
	ID             int64
	Calle          string
	Numero         string
	Referencia     *string
	Lat            float64
	Lng            float64
	NeighborhoodID int64
	CreatedAt      time.Time
}
