package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laqus/deskguard-api/internal/application/analytics"
)

// DashboardHandler expone los agregados del inventario de la organización activa.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Contadores del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Tabla de productos del dashboard
// @Description  Búsqueda por subcadena sin distinguir mayúsculas ni acentos
// @Description  sobre nombre de ítem, modelo y marca.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Success      200     {object}  dto.DashboardProductsResponse
// @Router       /api/dashboard/products [get]
func (h *DashboardHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(GetOrgID(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
