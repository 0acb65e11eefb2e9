// Package access define la política de autorización como predicados puros
// sobre un enum cerrado de roles. Todo lo que no se reconoce explícitamente
// se niega (deny-by-default): un typo en un rol nunca se convierte en permiso.
package access

// Role es el conjunto cerrado de roles conocidos por la política.
type Role int

const (
	// RoleNone es el rol de un valor no reconocido: sin permisos.
	RoleNone Role = iota
	RoleAdmin
	RoleEditor
	RoleCommon
	RoleViewer
)

// ParseRole convierte el valor persistido (string) al enum cerrado.
// Cualquier valor desconocido o vacío mapea a RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	case "common":
		return RoleCommon
	case "viewer":
		return RoleViewer
	default:
		return RoleNone
	}
}

// String devuelve la representación persistible del rol.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	case RoleCommon:
		return "common"
	case RoleViewer:
		return "viewer"
	default:
		return ""
	}
}

// CanMutate indica si el rol puede ejecutar operaciones de escritura
// (crear, editar, borrar, ajustar cantidades).
func CanMutate(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

// CanAdminister indica si el rol puede administrar usuarios y organizaciones.
func CanAdminister(r Role) bool {
	return r == RoleAdmin
}
