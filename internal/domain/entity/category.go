package entity

import "time"

// Category agrupa modelos y productos dentro de una organización.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
	Description    string // vacío si no se indicó
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
