package dto

import "time"

// CreateUserRequest entrada para crear un usuario (solo administración).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"` // admin, editor, common; default common
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de password.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SetMembershipsRequest reemplaza de forma atómica las membresías de un
// usuario (la operación "set membership list" que sustituye al borrar-insertar
// sin transacción).
type SetMembershipsRequest struct {
	Memberships []MembershipInput `json:"memberships"`
}

// MembershipInput una membresía deseada dentro de SetMembershipsRequest.
type MembershipInput struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	Role           string `json:"role" validate:"required"` // admin, editor, viewer
}

// MembershipResponse salida de una membresía.
type MembershipResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
}
