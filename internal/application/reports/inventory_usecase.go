// Package reports genera el reporte PDF del inventario de la organización activa.
package reports

import (
	"context"
	"fmt"

	"github.com/laqus/deskguard-api/internal/application/analytics"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

// InventoryReportUseCase compone la tabla del dashboard y la entrega al
// generador PDF.
type InventoryReportUseCase struct {
	orgs      repository.OrganizationRepository
	dashboard *analytics.DashboardUseCase
	generator InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	orgs repository.OrganizationRepository,
	dashboard *analytics.DashboardUseCase,
	generator InventoryPDFGenerator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{orgs: orgs, dashboard: dashboard, generator: generator}
}

// Generate produce el PDF con todos los productos de la organización.
func (uc *InventoryReportUseCase) Generate(ctx context.Context, orgID string) ([]byte, error) {
	org, err := uc.orgs.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	table, err := uc.dashboard.Products(orgID, "")
	if err != nil {
		return nil, err
	}
	out, err := uc.generator.GenerateInventoryReport(ctx, org, table.Items)
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}
	return out, nil
}
