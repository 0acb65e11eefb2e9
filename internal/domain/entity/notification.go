package entity

import "time"

// Tipos válidos de Notification.
const (
	NotificationLowStock      = "low_stock"
	NotificationExpiryWarning = "expiry_warning"
	NotificationNewItem       = "new_item"
)

// Notification es un aviso derivado del inventario (stock bajo, vencimiento,
// ítem nuevo). Advisory: se consume como lista de no-leídas + marcar leída.
type Notification struct {
	ID             string
	OrganizationID string
	Type           string // low_stock, expiry_warning, new_item
	Message        string
	ProductID      string // vacío si no aplica a un producto puntual
	IsRead         bool
	CreatedAt      time.Time
}
