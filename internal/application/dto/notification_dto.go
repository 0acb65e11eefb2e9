package dto

import "time"

// NotificationResponse salida de una notificación no leída.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // low_stock, expiry_warning, new_item
	Message   string    `json:"message"`
	ProductID string    `json:"product_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse notificaciones no leídas de la organización activa.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}
