package entity

import "time"

// Roles globales válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleCommon = "common"
)

// User representa un usuario del sistema. Role es el rol global; el rol
// efectivo dentro de una organización lo define su Membership.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, editor, common
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
