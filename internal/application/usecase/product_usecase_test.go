package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
)

const (
	orgMain  = "org-main"
	orgOther = "org-other"
)

// productFixture memstore + caso de uso con una categoría y un modelo listos.
type productFixture struct {
	store *memstore.Store
	uc    *usecase.ProductUseCase
	model *entity.Model
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	store := memstore.New()
	now := time.Now()

	cat := &entity.Category{
		ID: uuid.New().String(), OrganizationID: orgMain, Name: "Notebooks",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, store.Categories().Create(cat))

	model := &entity.Model{
		ID: uuid.New().String(), OrganizationID: orgMain, CategoryID: cat.ID,
		Name: "ThinkPad T14", Brand: "Lenovo", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, store.Models().Create(model))

	uc := usecase.NewProductUseCase(store.Products(), store.Models(), store.Notifications())
	return &productFixture{store: store, uc: uc, model: model}
}

func (f *productFixture) unread(t *testing.T) []*entity.Notification {
	t.Helper()
	list, err := f.store.Notifications().ListUnreadByOrganization(orgMain, 100)
	require.NoError(t, err)
	return list
}

// Create deriva la categoría del modelo y emite la notificación new_item.
func TestCreate_DerivaCategoriaYNotifica(t *testing.T) {
	f := newProductFixture(t)

	out, err := f.uc.Create(orgMain, dto.CreateProductRequest{
		Name: "Notebook Dev", ModelID: f.model.ID, Quantity: 5, MinQuantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, f.model.CategoryID, out.CategoryID,
		"la categoría debe derivarse del modelo, nunca del request")

	notifs := f.unread(t)
	require.Len(t, notifs, 1)
	assert.Equal(t, entity.NotificationNewItem, notifs[0].Type)
	assert.Equal(t, out.ID, notifs[0].ProductID)
}

// Un modelo de otra organización no sirve para crear el producto.
func TestCreate_ModeloDeOtraOrganizacion(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.Create(orgOther, dto.CreateProductRequest{
		Name: "Notebook Dev", ModelID: f.model.ID, Quantity: 5, MinQuantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La cantidad nunca baja de cero: el ajuste que quedaría negativo es no-op y
// devuelve el estado vigente.
func TestAdjustQuantity_NuncaNegativa(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(orgMain, dto.CreateProductRequest{
		Name: "Notebook Dev", ModelID: f.model.ID, Quantity: 2, MinQuantity: 1,
	})
	require.NoError(t, err)

	out, adjusted, err := f.uc.AdjustQuantity(orgMain, created.ID, -5)
	require.NoError(t, err)
	assert.False(t, adjusted, "un resultado negativo debe descartarse, no fallar")
	assert.Equal(t, 2, out.Quantity, "la cantidad vigente no debe cambiar")

	out, adjusted, err = f.uc.AdjustQuantity(orgMain, created.ID, -2)
	require.NoError(t, err)
	assert.True(t, adjusted)
	assert.Equal(t, 0, out.Quantity, "llegar exactamente a cero sí es válido")
}

// Cruce del umbral hacia abajo: emite low_stock una sola vez, no en cada
// ajuste posterior dentro de la zona baja.
func TestAdjustQuantity_NotificaCruceDeUmbral(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(orgMain, dto.CreateProductRequest{
		Name: "Notebook Dev", ModelID: f.model.ID, Quantity: 5, MinQuantity: 2,
	})
	require.NoError(t, err)
	baseline := len(f.unread(t)) // new_item del create

	// 5 → 3: sigue por encima del umbral, sin aviso.
	_, _, err = f.uc.AdjustQuantity(orgMain, created.ID, -2)
	require.NoError(t, err)
	assert.Len(t, f.unread(t), baseline)

	// 3 → 2: cruza el umbral (qty == min), un aviso low_stock.
	_, _, err = f.uc.AdjustQuantity(orgMain, created.ID, -1)
	require.NoError(t, err)
	notifs := f.unread(t)
	require.Len(t, notifs, baseline+1)
	assert.Equal(t, entity.NotificationLowStock, notifs[0].Type)

	// 2 → 1: ya estaba bajo, no se repite el aviso.
	_, _, err = f.uc.AdjustQuantity(orgMain, created.ID, -1)
	require.NoError(t, err)
	assert.Len(t, f.unread(t), baseline+1)
}

// El ajuste sobre un producto de otra organización se trata como inexistente.
func TestAdjustQuantity_OtraOrganizacionEsNotFound(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(orgMain, dto.CreateProductRequest{
		Name: "Notebook Dev", ModelID: f.model.ID, Quantity: 5, MinQuantity: 2,
	})
	require.NoError(t, err)

	_, _, err = f.uc.AdjustQuantity(orgOther, created.ID, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
