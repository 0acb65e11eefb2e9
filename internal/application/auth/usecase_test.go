package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/application/auth"
	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
	pkgjwt "github.com/laqus/deskguard-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthFixture(t *testing.T) (*memstore.Store, *scope.Resolver, *auth.AuthUseCase) {
	t.Helper()
	store := memstore.New()
	resolver := scope.NewResolver(store.Memberships())
	uc := auth.NewAuthUseCase(store.Users(), resolver, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "deskguard-test",
	})
	return store, resolver, uc
}

// Registro + login: el token lleva el rol global y el login resuelve la
// organización por defecto del usuario.
func TestLogin_ResuelveOrganizacionPorDefecto(t *testing.T) {
	store, resolver, uc := newAuthFixture(t)

	user, err := uc.Register(dto.RegisterRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCommon, user.Role, "el rol por defecto es common")

	require.NoError(t, store.Memberships().Create(&entity.Membership{
		ID: uuid.New().String(), UserID: user.ID, OrganizationID: "org-a",
		Role: entity.MembershipRoleEditor, CreatedAt: time.Now(),
	}))

	out, err := uc.Login(dto.LoginRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "org-a", out.OrganizationID)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleCommon, role)

	active, err := resolver.Active(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "org-a", active)
}

// Sin membresías el login funciona pero la sesión queda sin alcance.
func TestLogin_SinMembresias(t *testing.T) {
	_, resolver, uc := newAuthFixture(t)
	user, err := uc.Register(dto.RegisterRequest{Email: "bob@laqus.com", Password: "123456"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "bob@laqus.com", Password: "123456"})
	require.NoError(t, err)
	assert.Empty(t, out.OrganizationID)

	_, err = resolver.Active(user.ID)
	assert.ErrorIs(t, err, domain.ErrScopeUnresolved)
}

// Credenciales malas: mismo error para email inexistente y password errado.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	_, _, uc := newAuthFixture(t)
	_, err := uc.Register(dto.RegisterRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "alice@laqus.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@laqus.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// El registro no acepta roles que no existen ni el rol de membresía viewer.
func TestRegister_RolesInvalidos(t *testing.T) {
	_, _, uc := newAuthFixture(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "a@laqus.com", Password: "123456", Role: "viewer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@laqus.com", Password: "123456", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Email repetido en el registro → conflicto.
func TestRegister_EmailDuplicado(t *testing.T) {
	_, _, uc := newAuthFixture(t)
	_, err := uc.Register(dto.RegisterRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "alice@laqus.com", Password: "654321"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Logout destruye el alcance de la sesión.
func TestLogout_OlvidaElAlcance(t *testing.T) {
	store, resolver, uc := newAuthFixture(t)
	user, err := uc.Register(dto.RegisterRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)
	require.NoError(t, store.Memberships().Create(&entity.Membership{
		ID: uuid.New().String(), UserID: user.ID, OrganizationID: "org-a",
		Role: entity.MembershipRoleAdmin, CreatedAt: time.Now(),
	}))
	_, err = uc.Login(dto.LoginRequest{Email: "alice@laqus.com", Password: "123456"})
	require.NoError(t, err)

	uc.Logout(user.ID)

	_, err = resolver.Active(user.ID)
	assert.ErrorIs(t, err, domain.ErrScopeUnresolved)
}
