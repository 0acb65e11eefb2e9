package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (en la organización activa).
// La categoría se deriva del modelo; no se acepta por separado para que nunca
// quede inconsistente con la categoría del modelo.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	ModelID     string           `json:"model_id" validate:"required"`
	Quantity    int              `json:"quantity" validate:"min=0"`
	MinQuantity int              `json:"min_quantity" validate:"min=1"`
	Value       *decimal.Decimal `json:"value"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ModelID     *string          `json:"model_id"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int             `json:"min_quantity" validate:"omitempty,min=1"`
	Value       *decimal.Decimal `json:"value"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
}

// AdjustQuantityRequest entrada para el ajuste rápido de cantidad (+1/-1 en la UI).
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	ModelID        string           `json:"model_id"`
	CategoryID     string           `json:"category_id"`
	Name           string           `json:"name"`
	Quantity       int              `json:"quantity"`
	MinQuantity    int              `json:"min_quantity"`
	Value          *decimal.Decimal `json:"value,omitempty"`
	ExpiryDate     *time.Time       `json:"expiry_date,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
