package dto

import "time"

// CreateModelRequest entrada para crear un modelo (en la organización activa).
type CreateModelRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Brand      string `json:"brand" validate:"required,min=1,max=200"`
	CategoryID string `json:"category_id" validate:"required"`
}

// UpdateModelRequest entrada para actualizar un modelo.
type UpdateModelRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Brand      *string `json:"brand" validate:"omitempty,min=1,max=200"`
	CategoryID *string `json:"category_id"`
}

// ModelResponse salida de un modelo.
type ModelResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ModelListResponse lista paginada de modelos.
type ModelListResponse struct {
	Items []ModelResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
