package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO contadores del dashboard de inventario. Proyecciones
// puras sobre la última lista consultada; se recalculan en cada petición.
type DashboardSummaryDTO struct {
	TotalCount         int `json:"total_count"`
	LowStockCount      int `json:"low_stock_count"`
	ExpiringSoonCount  int `json:"expiring_soon_count"`
	UnreadNotifications int `json:"unread_notifications"`
}

// DashboardProductDTO fila de la tabla de productos del dashboard, con el
// modelo y la categoría resueltos para mostrar y buscar.
type DashboardProductDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ModelName    string           `json:"model_name"`
	ModelBrand   string           `json:"model_brand"`
	CategoryName string           `json:"category_name"`
	Quantity     int              `json:"quantity"`
	MinQuantity  int              `json:"min_quantity"`
	Value        *decimal.Decimal `json:"value,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
	LowStock     bool             `json:"low_stock"`
	ExpiringSoon bool             `json:"expiring_soon"`
}

// DashboardProductsResponse tabla del dashboard, ya filtrada por el término
// de búsqueda si se indicó.
type DashboardProductsResponse struct {
	Items []DashboardProductDTO `json:"items"`
}
