package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
)

// userFixture memstore + caso de uso con dos organizaciones listas.
type userFixture struct {
	store *memstore.Store
	uc    *usecase.UserUseCase
	orgA  *entity.Organization
	orgB  *entity.Organization
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	store := memstore.New()
	now := time.Now()

	orgA := &entity.Organization{ID: uuid.New().String(), Name: "Matriz", CreatedAt: now, UpdatedAt: now}
	orgB := &entity.Organization{ID: uuid.New().String(), Name: "Filial", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Organizations().Create(orgA))
	require.NoError(t, store.Organizations().Create(orgB))

	uc := usecase.NewUserUseCase(
		store.Users(), store.Memberships(), store.Organizations(), memstore.NewTxRunner(store),
	)
	return &userFixture{store: store, uc: uc, orgA: orgA, orgB: orgB}
}

func (f *userFixture) createUser(t *testing.T, email string) *dto.UserResponse {
	t.Helper()
	out, err := f.uc.Create(dto.CreateUserRequest{
		Name: "Test", Email: email, Password: "123456", Role: entity.RoleCommon,
	})
	require.NoError(t, err)
	return out
}

// El password se guarda con bcrypt, nunca en claro, y no sale en la respuesta.
func TestCreateUser_HasheaPassword(t *testing.T) {
	f := newUserFixture(t)
	out := f.createUser(t, "alice@laqus.com")

	stored, err := f.store.Users().GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "123456", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("123456")))
}

// Actualizar un usuario inexistente devuelve no-encontrado.
func TestUpdateUser_IDInexistente_RetornaNotFound(t *testing.T) {
	f := newUserFixture(t)

	name := "Fantasma"
	_, err := f.uc.Update(uuid.New().String(), dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Email duplicado → conflicto.
func TestCreateUser_EmailDuplicado(t *testing.T) {
	f := newUserFixture(t)
	f.createUser(t, "alice@laqus.com")

	_, err := f.uc.Create(dto.CreateUserRequest{
		Name: "Otra", Email: "alice@laqus.com", Password: "123456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// SetMemberships reemplaza la lista completa conservando el orden solicitado.
func TestSetMemberships_ReemplazaConservandoOrden(t *testing.T) {
	f := newUserFixture(t)
	user := f.createUser(t, "alice@laqus.com")

	out, err := f.uc.SetMemberships(context.Background(), user.ID, dto.SetMembershipsRequest{
		Memberships: []dto.MembershipInput{
			{OrganizationID: f.orgB.ID, Role: entity.MembershipRoleEditor},
			{OrganizationID: f.orgA.ID, Role: entity.MembershipRoleViewer},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, f.orgB.ID, out[0].OrganizationID, "el orden solicitado define la membresía por defecto")
	assert.Equal(t, "Filial", out[0].OrganizationName)
	assert.Equal(t, entity.MembershipRoleEditor, out[0].Role)

	// Segundo reemplazo: solo A queda.
	out, err = f.uc.SetMemberships(context.Background(), user.ID, dto.SetMembershipsRequest{
		Memberships: []dto.MembershipInput{
			{OrganizationID: f.orgA.ID, Role: entity.MembershipRoleAdmin},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, f.orgA.ID, out[0].OrganizationID)
}

// Una entrada inválida rechaza el reemplazo completo antes de tocar el store.
func TestSetMemberships_EntradaInvalidaNoTocaNada(t *testing.T) {
	f := newUserFixture(t)
	user := f.createUser(t, "alice@laqus.com")
	_, err := f.uc.SetMemberships(context.Background(), user.ID, dto.SetMembershipsRequest{
		Memberships: []dto.MembershipInput{{OrganizationID: f.orgA.ID, Role: entity.MembershipRoleAdmin}},
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   []dto.MembershipInput
		want error
	}{
		{"rol desconocido", []dto.MembershipInput{{OrganizationID: f.orgB.ID, Role: "owner"}}, domain.ErrInvalidInput},
		{"organización inexistente", []dto.MembershipInput{{OrganizationID: "org-fantasma", Role: entity.MembershipRoleAdmin}}, domain.ErrNotFound},
		{"organización repetida", []dto.MembershipInput{
			{OrganizationID: f.orgB.ID, Role: entity.MembershipRoleAdmin},
			{OrganizationID: f.orgB.ID, Role: entity.MembershipRoleViewer},
		}, domain.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.SetMemberships(context.Background(), user.ID, dto.SetMembershipsRequest{Memberships: tc.in})
			assert.ErrorIs(t, err, tc.want)

			kept, err := f.uc.ListMemberships(user.ID)
			require.NoError(t, err)
			require.Len(t, kept, 1, "las membresías anteriores deben conservarse intactas")
			assert.Equal(t, f.orgA.ID, kept[0].OrganizationID)
		})
	}
}

// El runner transaccional de memstore restaura el snapshot si el callback
// falla a mitad de camino: el borrar-e-insertar nunca queda por la mitad.
func TestTxRunner_RevierteAnteFalloParcial(t *testing.T) {
	f := newUserFixture(t)
	user := f.createUser(t, "alice@laqus.com")
	_, err := f.uc.SetMemberships(context.Background(), user.ID, dto.SetMembershipsRequest{
		Memberships: []dto.MembershipInput{{OrganizationID: f.orgA.ID, Role: entity.MembershipRoleAdmin}},
	})
	require.NoError(t, err)

	boom := errors.New("fallo simulado")
	runner := memstore.NewTxRunner(f.store)
	err = runner.RunMemberships(context.Background(), func(memberships repository.MembershipRepository) error {
		if err := memberships.DeleteByUser(user.ID); err != nil {
			return err
		}
		// El borrado ya ocurrió; el fallo posterior debe revertirlo.
		return boom
	})
	assert.ErrorIs(t, err, boom)

	kept, err := f.store.Memberships().ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1, "el rollback debe restaurar la membresía borrada")
	assert.Equal(t, f.orgA.ID, kept[0].OrganizationID)
}
