package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laqus/deskguard-api/internal/domain/access"
)

// CanMutate solo permite admin y editor; todo lo demás (incluyendo roles
// desconocidos) se niega.
func TestCanMutate_SoloAdminYEditor(t *testing.T) {
	cases := []struct {
		name string
		role string
		want bool
	}{
		{"admin puede mutar", "admin", true},
		{"editor puede mutar", "editor", true},
		{"common es solo lectura", "common", false},
		{"viewer es solo lectura", "viewer", false},
		{"rol vacío se niega", "", false},
		{"rol desconocido se niega", "superuser", false},
		{"typo en rol se niega", "Admin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, access.CanMutate(access.ParseRole(tc.role)))
		})
	}
}

func TestCanAdminister_SoloAdmin(t *testing.T) {
	assert.True(t, access.CanAdminister(access.RoleAdmin))
	assert.False(t, access.CanAdminister(access.RoleEditor))
	assert.False(t, access.CanAdminister(access.RoleCommon))
	assert.False(t, access.CanAdminister(access.RoleViewer))
	assert.False(t, access.CanAdminister(access.RoleNone))
}

func TestParseRole_DesconocidoMapeaANone(t *testing.T) {
	assert.Equal(t, access.RoleNone, access.ParseRole("root"))
	assert.Equal(t, access.RoleNone, access.ParseRole(""))
	assert.Equal(t, access.RoleAdmin, access.ParseRole("admin"))
	assert.Equal(t, access.RoleViewer, access.ParseRole("viewer"))
}

func TestRole_StringRoundTrip(t *testing.T) {
	for _, r := range []access.Role{access.RoleAdmin, access.RoleEditor, access.RoleCommon, access.RoleViewer} {
		assert.Equal(t, r, access.ParseRole(r.String()))
	}
	assert.Equal(t, "", access.RoleNone.String())
}
