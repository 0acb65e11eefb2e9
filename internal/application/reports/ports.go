package reports

import (
	"context"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/domain/entity"
)

// InventoryPDFGenerator renderiza el reporte de inventario de una
// organización. Lo implementa infrastructure/pdf (Maroto).
type InventoryPDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, org *entity.Organization, rows []dto.DashboardProductDTO) ([]byte, error)
}
