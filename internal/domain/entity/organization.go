package entity

import "time"

// Organization es la frontera de tenencia: toda entidad de inventario
// pertenece exactamente a una organización.
type Organization struct {
	ID          string
	Name        string
	Description string // vacío si no se indicó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
