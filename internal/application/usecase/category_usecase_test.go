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

// Borrar una categoría con modelos dependientes se rechaza con conflicto;
// tras quitar el dependiente, el borrado procede.
func TestDeleteCategory_ConDependientesRechaza(t *testing.T) {
	store := memstore.New()
	categories := usecase.NewCategoryUseCase(store.Categories())
	models := usecase.NewModelUseCase(store.Models(), store.Categories())

	cat, err := categories.Create(orgMain, dto.CreateCategoryRequest{Name: "Notebooks"})
	require.NoError(t, err)
	model, err := models.Create(orgMain, dto.CreateModelRequest{
		Name: "ThinkPad T14", Brand: "Lenovo", CategoryID: cat.ID,
	})
	require.NoError(t, err)

	err = categories.Delete(orgMain, cat.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una categoría referenciada por un modelo no debe poder borrarse")

	require.NoError(t, models.Delete(orgMain, model.ID))
	assert.NoError(t, categories.Delete(orgMain, cat.ID))
}

// Un modelo con productos tampoco se borra.
func TestDeleteModel_ConProductosRechaza(t *testing.T) {
	store := memstore.New()
	models := usecase.NewModelUseCase(store.Models(), store.Categories())
	now := time.Now()

	cat := &entity.Category{ID: uuid.New().String(), OrganizationID: orgMain, Name: "Notebooks", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Categories().Create(cat))
	model, err := models.Create(orgMain, dto.CreateModelRequest{
		Name: "ThinkPad T14", Brand: "Lenovo", CategoryID: cat.ID,
	})
	require.NoError(t, err)
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: uuid.New().String(), OrganizationID: orgMain,
		ModelID: model.ID, CategoryID: cat.ID,
		Name: "Notebook Dev", Quantity: 1, MinQuantity: 1,
		CreatedAt: now, UpdatedAt: now,
	}))

	err = models.Delete(orgMain, model.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Las entidades de otra organización se tratan como inexistentes: el alcance
// nunca se cruza ni siquiera conociendo el ID.
func TestCategory_AlcanceDeOrganizacion(t *testing.T) {
	store := memstore.New()
	categories := usecase.NewCategoryUseCase(store.Categories())

	cat, err := categories.Create(orgMain, dto.CreateCategoryRequest{Name: "Notebooks"})
	require.NoError(t, err)

	got, err := categories.GetByID(orgOther, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "otra organización no debe ver la categoría")

	_, err = categories.Update(orgOther, cat.ID, dto.UpdateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = categories.Delete(orgOther, cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Actualizar un ID inexistente devuelve no-encontrado, nunca un resultado
// vacío con éxito. Cubre categorías, modelos, productos y organizaciones.
func TestUpdate_IDInexistente_RetornaNotFound(t *testing.T) {
	store := memstore.New()
	categories := usecase.NewCategoryUseCase(store.Categories())
	models := usecase.NewModelUseCase(store.Models(), store.Categories())
	products := usecase.NewProductUseCase(store.Products(), store.Models(), store.Notifications())
	orgs := usecase.NewOrganizationUseCase(store.Organizations())
	absent := uuid.New().String()

	_, err := categories.Update(orgMain, absent, dto.UpdateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = models.Update(orgMain, absent, dto.UpdateModelRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = products.Update(orgMain, absent, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = orgs.Update(absent, dto.UpdateOrganizationRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un modelo solo puede referenciar categorías de su misma organización.
func TestCreateModel_CategoriaDeOtraOrganizacion(t *testing.T) {
	store := memstore.New()
	categories := usecase.NewCategoryUseCase(store.Categories())
	models := usecase.NewModelUseCase(store.Models(), store.Categories())

	cat, err := categories.Create(orgOther, dto.CreateCategoryRequest{Name: "Ajena"})
	require.NoError(t, err)

	_, err = models.Create(orgMain, dto.CreateModelRequest{
		Name: "ThinkPad T14", Brand: "Lenovo", CategoryID: cat.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
