package scope_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/access"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
)

const (
	userAlice = "user-alice"
	orgA      = "org-a"
	orgB      = "org-b"
	orgC      = "org-c"
)

// newResolver monta un resolutor sobre memstore con las membresías indicadas
// (en orden: la primera es la más antigua).
func newResolver(t *testing.T, memberships ...*entity.Membership) *scope.Resolver {
	t.Helper()
	store := memstore.New()
	base := time.Now()
	for i, m := range memberships {
		m.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, store.Memberships().Create(m))
	}
	return scope.NewResolver(store.Memberships())
}

func membership(id, userID, orgID, role string) *entity.Membership {
	return &entity.Membership{ID: id, UserID: userID, OrganizationID: orgID, Role: role}
}

// Sin resolver, Active rechaza: ninguna consulta debe salir con alcance vacío.
func TestActive_SinResolver_RetornaErrScopeUnresolved(t *testing.T) {
	r := newResolver(t, membership("m1", userAlice, orgA, entity.MembershipRoleAdmin))

	_, err := r.Active(userAlice)
	assert.ErrorIs(t, err, domain.ErrScopeUnresolved)
	assert.Equal(t, scope.StateUnresolved, r.CurrentState(userAlice))
}

// Con membresías [A, B], la resolución por defecto elige A (la primera creada).
func TestResolveDefault_EligePrimeraMembresia(t *testing.T) {
	r := newResolver(t,
		membership("m1", userAlice, orgA, entity.MembershipRoleAdmin),
		membership("m2", userAlice, orgB, entity.MembershipRoleViewer),
	)

	orgID, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)
	assert.Equal(t, orgA, orgID)
	assert.Equal(t, scope.StateResolved, r.CurrentState(userAlice))

	active, err := r.Active(userAlice)
	require.NoError(t, err)
	assert.Equal(t, orgA, active)
}

// La resolución por defecto es la única selección implícita: si la sesión ya
// está resuelta, volver a llamarla no cambia la organización activa.
func TestResolveDefault_NoSobreescribeSesionResuelta(t *testing.T) {
	r := newResolver(t,
		membership("m1", userAlice, orgA, entity.MembershipRoleAdmin),
		membership("m2", userAlice, orgB, entity.MembershipRoleAdmin),
	)

	_, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)
	require.NoError(t, r.Switch(userAlice, orgB))

	orgID, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)
	assert.Equal(t, orgB, orgID, "la sesión ya resuelta debe conservar su organización")
}

// Sin membresías la sesión queda sin resolver ("" sin error).
func TestResolveDefault_SinMembresias(t *testing.T) {
	r := newResolver(t)

	orgID, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)
	assert.Empty(t, orgID)
	assert.Equal(t, scope.StateUnresolved, r.CurrentState(userAlice))
}

// Switch a una organización con membresía: Resolved(A) → Resolved(B).
func TestSwitch_CambiaOrganizacionActiva(t *testing.T) {
	r := newResolver(t,
		membership("m1", userAlice, orgA, entity.MembershipRoleAdmin),
		membership("m2", userAlice, orgB, entity.MembershipRoleEditor),
	)
	_, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)

	require.NoError(t, r.Switch(userAlice, orgB))

	active, err := r.Active(userAlice)
	require.NoError(t, err)
	assert.Equal(t, orgB, active)
	assert.Equal(t, scope.StateResolved, r.CurrentState(userAlice))
}

// Switch a una organización sin membresía: ErrForbidden y el alcance anterior
// se conserva.
func TestSwitch_SinMembresia_RechazaYConserva(t *testing.T) {
	r := newResolver(t, membership("m1", userAlice, orgA, entity.MembershipRoleAdmin))
	_, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)

	err = r.Switch(userAlice, orgC)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	active, err := r.Active(userAlice)
	require.NoError(t, err)
	assert.Equal(t, orgA, active, "el cambio fallido no debe alterar la organización activa")
}

// Switch sin sesión previa que falla deja la sesión sin resolver (no queda el
// estado transitorio colgado).
func TestSwitch_FallidoSinSesionPrevia(t *testing.T) {
	r := newResolver(t, membership("m1", userAlice, orgA, entity.MembershipRoleAdmin))

	err := r.Switch(userAlice, orgC)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, scope.StateUnresolved, r.CurrentState(userAlice))
}

// El rol efectivo viene de la membresía de la organización activa, no del rol
// global: viewer en A aunque el usuario sea admin del sistema.
func TestEffectiveRole_VieneDeLaMembresia(t *testing.T) {
	r := newResolver(t,
		membership("m1", userAlice, orgA, entity.MembershipRoleViewer),
		membership("m2", userAlice, orgB, entity.MembershipRoleEditor),
	)
	_, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)

	role, err := r.EffectiveRole(userAlice)
	require.NoError(t, err)
	assert.Equal(t, access.RoleViewer, role)
	assert.False(t, access.CanMutate(role))

	require.NoError(t, r.Switch(userAlice, orgB))
	role, err = r.EffectiveRole(userAlice)
	require.NoError(t, err)
	assert.Equal(t, access.RoleEditor, role)
	assert.True(t, access.CanMutate(role))
}

// Forget destruye la sesión: logout vuelve al estado inicial.
func TestForget_DestruyeLaSesion(t *testing.T) {
	r := newResolver(t, membership("m1", userAlice, orgA, entity.MembershipRoleAdmin))
	_, err := r.ResolveDefault(userAlice)
	require.NoError(t, err)

	r.Forget(userAlice)

	_, err = r.Active(userAlice)
	assert.ErrorIs(t, err, domain.ErrScopeUnresolved)
	assert.Equal(t, scope.StateUnresolved, r.CurrentState(userAlice))
}
