package dto

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"` // default common
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario autenticado + organización activa inicial
// (vacía si el usuario no tiene membresías).
type LoginResponse struct {
	Token          string       `json:"token"`
	User           UserResponse `json:"user"`
	OrganizationID string       `json:"organization_id,omitempty"`
}
