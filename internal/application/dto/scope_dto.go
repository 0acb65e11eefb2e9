package dto

// ScopeResponse estado del alcance de organización de la sesión.
type ScopeResponse struct {
	Resolved       bool   `json:"resolved"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// SwitchScopeRequest entrada para cambiar la organización activa.
type SwitchScopeRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
}

// MembershipListResponse membresías del usuario autenticado, en orden de creación.
type MembershipListResponse struct {
	Items []MembershipResponse `json:"items"`
}
