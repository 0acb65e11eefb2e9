package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/application/analytics"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/infrastructure/memstore"
)

const testOrg = "org-dashboard"

type fixture struct {
	store *memstore.Store
	uc    *analytics.DashboardUseCase
	now   time.Time
}

// newFixture monta el agregador sobre memstore con un reloj fijo.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	uc := analytics.NewDashboardUseCase(
		store.Products(), store.Models(), store.Categories(), store.Notifications(),
	).WithClock(func() time.Time { return now })
	return &fixture{store: store, uc: uc, now: now}
}

func (f *fixture) addCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{
		ID: uuid.New().String(), OrganizationID: testOrg, Name: name,
		CreatedAt: f.now, UpdatedAt: f.now,
	}
	require.NoError(t, f.store.Categories().Create(c))
	return c
}

func (f *fixture) addModel(t *testing.T, cat *entity.Category, name, brand string) *entity.Model {
	t.Helper()
	m := &entity.Model{
		ID: uuid.New().String(), OrganizationID: testOrg, CategoryID: cat.ID,
		Name: name, Brand: brand, CreatedAt: f.now, UpdatedAt: f.now,
	}
	require.NoError(t, f.store.Models().Create(m))
	return m
}

func (f *fixture) addProduct(t *testing.T, m *entity.Model, name string, qty, min int, expiry *time.Time) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID: uuid.New().String(), OrganizationID: testOrg,
		ModelID: m.ID, CategoryID: m.CategoryID,
		Name: name, Quantity: qty, MinQuantity: min, ExpiryDate: expiry,
		CreatedAt: f.now, UpdatedAt: f.now,
	}
	require.NoError(t, f.store.Products().Create(p))
	return p
}

// Frontera de stock bajo: quantity == min_quantity ya cuenta como bajo.
func TestSummary_FronteraStockBajo(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory(t, "Notebooks")
	m := f.addModel(t, cat, "ThinkPad T14", "Lenovo")
	f.addProduct(t, m, "En el límite", 2, 2, nil)   // qty == min → bajo
	f.addProduct(t, m, "Por encima", 3, 2, nil)     // qty > min → ok
	f.addProduct(t, m, "Por debajo", 1, 2, nil)     // qty < min → bajo
	f.addProduct(t, m, "Agotado pero min 1", 0, 1, nil) // bajo

	summary, err := f.uc.Summary(testOrg)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalCount)
	assert.Equal(t, 3, summary.LowStockCount,
		"quantity == min_quantity debe contar como stock bajo")
}

// Frontera de vencimiento: exactamente 30 días cuenta, 30 días + 1s no.
func TestSummary_FronteraVencimiento(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory(t, "Licencias")
	m := f.addModel(t, cat, "Antivirus", "ACME")

	exact := f.now.Add(30 * 24 * time.Hour)
	beyond := f.now.Add(30*24*time.Hour + time.Second)
	past := f.now.Add(-time.Hour)
	f.addProduct(t, m, "Vence en 30d exactos", 5, 1, &exact)
	f.addProduct(t, m, "Vence en 30d+1s", 5, 1, &beyond)
	f.addProduct(t, m, "Ya vencido", 5, 1, &past)
	f.addProduct(t, m, "Sin vencimiento", 5, 1, nil)

	summary, err := f.uc.Summary(testOrg)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ExpiringSoonCount,
		"30 días exactos y el ya vencido cuentan; 30d+1s y sin fecha no")
}

// El conteo de no-leídas entra al resumen.
func TestSummary_NotificacionesNoLeidas(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, f.store.Notifications().Create(&entity.Notification{
			ID: uuid.New().String(), OrganizationID: testOrg,
			Type: entity.NotificationNewItem, Message: "x", CreatedAt: f.now,
		}))
	}
	read := &entity.Notification{
		ID: uuid.New().String(), OrganizationID: testOrg,
		Type: entity.NotificationNewItem, Message: "y", CreatedAt: f.now,
	}
	require.NoError(t, f.store.Notifications().Create(read))
	require.NoError(t, f.store.Notifications().MarkRead(read.ID))

	summary, err := f.uc.Summary(testOrg)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.UnreadNotifications)
}

// Búsqueda sin distinguir mayúsculas ni acentos sobre nombre, modelo y marca:
// "lenovo" encuentra el producto aunque la marca esté solo en el modelo.
func TestProducts_BusquedaPorMarca(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory(t, "Notebooks")
	thinkpad := f.addModel(t, cat, "ThinkPad T14", "Lenovo")
	mouse := f.addModel(t, cat, "MX Master", "Logitech")
	f.addProduct(t, thinkpad, "Notebook Dev", 5, 2, nil)
	f.addProduct(t, mouse, "Mouse Inalámbrico", 8, 2, nil)

	out, err := f.uc.Products(testOrg, "lenovo")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Notebook Dev", out.Items[0].Name)
	assert.Equal(t, "ThinkPad T14", out.Items[0].ModelName)
	assert.Equal(t, "Lenovo", out.Items[0].ModelBrand)
	assert.Equal(t, "Notebooks", out.Items[0].CategoryName)
}

// Acentos: "inalambrico" (sin tilde) encuentra "Inalámbrico".
func TestProducts_BusquedaInsensibleAAcentos(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory(t, "Periféricos")
	m := f.addModel(t, cat, "MX Master", "Logitech")
	f.addProduct(t, m, "Mouse Inalámbrico", 8, 2, nil)

	out, err := f.uc.Products(testOrg, "inalambrico")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	out, err = f.uc.Products(testOrg, "TECLADO")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// Escenario completo de administración: categoría → modelo → producto, y el
// resumen refleja el descenso de stock hasta el umbral.
func TestDashboard_EscenarioCompleto(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory(t, "Periféricos")
	m := f.addModel(t, cat, "MX Master", "Logitech")
	p := f.addProduct(t, m, "Mouse #1", 5, 2, nil)

	summary, err := f.uc.Summary(testOrg)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalCount)
	assert.Equal(t, 0, summary.LowStockCount)

	// Descenso 5 → 2: en el umbral ya es stock bajo.
	_, ok, err := f.store.Products().AdjustQuantity(p.ID, -3)
	require.NoError(t, err)
	require.True(t, ok)

	summary, err = f.uc.Summary(testOrg)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.LowStockCount)

	out, err := f.uc.Products(testOrg, "")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].LowStock)
	assert.Equal(t, 2, out.Items[0].Quantity)
}
