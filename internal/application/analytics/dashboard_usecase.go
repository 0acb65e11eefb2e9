// Package analytics contiene el agregador del dashboard de inventario:
// contadores derivados y la tabla de productos con búsqueda.
package analytics

import (
	"fmt"
	"time"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain/entity"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// Tope de filas que consulta el dashboard. Los contadores son proyecciones
// puras sobre esta lista; no hay mantenimiento incremental ni capa de caché.
const dashboardMaxRows = 1000

// DashboardUseCase deriva el resumen y la tabla de productos de la
// organización activa a partir de la última lista consultada.
type DashboardUseCase struct {
	products      repository.ProductRepository
	models        repository.ModelRepository
	categories    repository.CategoryRepository
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el agregador.
func NewDashboardUseCase(
	products repository.ProductRepository,
	models repository.ModelRepository,
	categories repository.CategoryRepository,
	notifications repository.NotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:      products,
		models:        models,
		categories:    categories,
		notifications: notifications,
		now:           time.Now,
	}
}

// WithClock fija el reloj del agregador (tests de la ventana de vencimiento).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Summary contadores del dashboard. Dos consultas en paralelo: la lista de
// productos y el conteo de notificaciones no leídas.
func (uc *DashboardUseCase) Summary(orgID string) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type unreadResult struct {
		count int
		err   error
	}
	productsCh := make(chan productsResult, 1)
	unreadCh := make(chan unreadResult, 1)

	go func() {
		list, err := uc.products.ListByOrganization(orgID, dashboardMaxRows, 0)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		count, err := uc.notifications.CountUnreadByOrganization(orgID)
		unreadCh <- unreadResult{count, err}
	}()

	products := <-productsCh
	unread := <-unreadCh
	if products.err != nil {
		return nil, fmt.Errorf("listar productos: %w", products.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("contar notificaciones: %w", unread.err)
	}

	now := uc.now()
	summary := &dto.DashboardSummaryDTO{
		TotalCount:          len(products.list),
		UnreadNotifications: unread.count,
	}
	for _, p := range products.list {
		if p.LowStock() {
			summary.LowStockCount++
		}
		if p.ExpiringSoon(now) {
			summary.ExpiringSoonCount++
		}
	}
	return summary, nil
}

// Products tabla del dashboard con modelo y categoría resueltos, filtrada por
// el término de búsqueda (subcadena, sin distinguir mayúsculas ni acentos)
// sobre nombre de producto, nombre de modelo y marca de modelo.
func (uc *DashboardUseCase) Products(orgID, search string) (*dto.DashboardProductsResponse, error) {
	list, err := uc.products.ListByOrganization(orgID, dashboardMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	models, err := uc.models.ListByOrganization(orgID, dashboardMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("listar modelos: %w", err)
	}
	categories, err := uc.categories.ListByOrganization(orgID, dashboardMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}

	modelByID := make(map[string]*entity.Model, len(models))
	for _, m := range models {
		modelByID[m.ID] = m
	}
	categoryByID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	term := normalizeTerm(search)
	now := uc.now()
	items := make([]dto.DashboardProductDTO, 0, len(list))
	for _, p := range list {
		var modelName, modelBrand, categoryName string
		if m, ok := modelByID[p.ModelID]; ok {
			modelName, modelBrand = m.Name, m.Brand
		}
		if c, ok := categoryByID[p.CategoryID]; ok {
			categoryName = c.Name
		}
		if !matchesTerm(term, p.Name, modelName, modelBrand) {
			continue
		}
		item := dto.DashboardProductDTO{
			ID:           p.ID,
			Name:         p.Name,
			ModelName:    modelName,
			ModelBrand:   modelBrand,
			CategoryName: categoryName,
			Quantity:     p.Quantity,
			MinQuantity:  p.MinQuantity,
			ExpiryDate:   p.ExpiryDate,
			LowStock:     p.LowStock(),
			ExpiringSoon: p.ExpiringSoon(now),
		}
		if p.Value.Valid {
			v := p.Value.Decimal
			item.Value = &v
		}
		items = append(items, item)
	}
	return &dto.DashboardProductsResponse{Items: items}, nil
}
