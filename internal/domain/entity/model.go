package entity

import "time"

// Model representa un modelo/marca de equipo. Debe referenciar una Category
// de la misma organización.
type Model struct {
	ID             string
	OrganizationID string
	CategoryID     string
	Name           string
	Brand          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
