package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem de inventario (equipo o licencia).
//
// Invariantes: Quantity >= 0, MinQuantity >= 1, y CategoryID debe coincidir
// con la categoría del Model referenciado (se fuerza al crear/actualizar;
// está desnormalizado para facilitar consultas).
type Product struct {
	ID             string
	OrganizationID string
	ModelID        string
	CategoryID     string
	Name           string
	Quantity       int
	MinQuantity    int
	Value          decimal.NullDecimal // valor unitario; opcional
	ExpiryDate     *time.Time          // nil si no vence (ej. hardware)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indica si el producto está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// ExpiringSoon indica si el producto vence dentro de los próximos 30 días
// contados desde now (inclusive en el límite exacto).
func (p *Product) ExpiringSoon(now time.Time) bool {
	if p.ExpiryDate == nil {
		return false
	}
	return !p.ExpiryDate.After(now.Add(30 * 24 * time.Hour))
}
