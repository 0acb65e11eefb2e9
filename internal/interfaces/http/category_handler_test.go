package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
	apphttp "github.com/laqus/deskguard-api/internal/interfaces/http"
)

// buildCategoryApp monta el handler real de categorías sobre memstore con la
// cadena completa de middlewares, igual que el router de producción.
func buildCategoryApp(t *testing.T) (*fiber.App, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	require.NoError(t, store.Memberships().Create(&entity.Membership{
		ID:             "m-1",
		UserID:         testUserID,
		OrganizationID: testOrgID,
		Role:           entity.MembershipRoleEditor,
		CreatedAt:      time.Now(),
	}))
	resolver := scope.NewResolver(store.Memberships())
	handler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(store.Categories()))

	app := fiber.New()
	categories := app.Group("/categories",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireScope(resolver),
	)
	mutate := apphttp.RequireMutate(resolver)
	categories.Get("/:id", handler.GetByID)
	categories.Put("/:id", mutate, handler.Update)
	return app, store
}

func doJSONRequest(t *testing.T, app *fiber.App, method, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Actualizar una categoría que no existe debe responder 404, nunca 200 con
// cuerpo nulo.
func TestUpdateCategoria_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildCategoryApp(t)

	resp := doJSONRequest(t, app, http.MethodPut, "/categories/"+uuid.New().String(),
		tokenForRole(t, "common"), `{"name":"Nueva"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
	assert.NotEqual(t, "null", strings.TrimSpace(string(body)))
}

// La actualización de una categoría existente sigue respondiendo 200 con el
// recurso actualizado.
func TestUpdateCategoria_Existente_Retorna200(t *testing.T) {
	app, store := buildCategoryApp(t)
	now := time.Now()
	cat := &entity.Category{
		ID:             uuid.New().String(),
		OrganizationID: testOrgID,
		Name:           "Notebooks",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, store.Categories().Create(cat))

	resp := doJSONRequest(t, app, http.MethodPut, "/categories/"+cat.ID,
		tokenForRole(t, "common"), `{"name":"Equipos"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Equipos")
}
