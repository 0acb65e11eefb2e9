package entity

import "time"

// Roles válidos dentro de una organización (Membership.Role).
const (
	MembershipRoleAdmin  = "admin"
	MembershipRoleEditor = "editor"
	MembershipRoleViewer = "viewer"
)

// Membership asocia un User con una Organization y fija su rol efectivo
// dentro de ella. A lo sumo una fila por par (usuario, organización).
type Membership struct {
	ID             string
	UserID         string
	OrganizationID string
	Role           string // admin, editor, viewer
	CreatedAt      time.Time
}
