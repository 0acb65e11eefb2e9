package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain"
)

// ScopeHandler expone el alcance de organización de la sesión: consultar,
// cambiar y listar las membresías disponibles.
type ScopeHandler struct {
	resolver *scope.Resolver
	users    *usecase.UserUseCase
}

// NewScopeHandler construye el handler.
func NewScopeHandler(resolver *scope.Resolver, users *usecase.UserUseCase) *ScopeHandler {
	return &ScopeHandler{resolver: resolver, users: users}
}

// Get godoc
// @Summary      Organización activa de la sesión
// @Tags         scope
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScopeResponse
// @Router       /api/scope [get]
func (h *ScopeHandler) Get(c *fiber.Ctx) error {
	orgID, err := h.resolver.Active(GetUserID(c))
	if errors.Is(err, domain.ErrScopeUnresolved) {
		return c.JSON(dto.ScopeResponse{Resolved: false})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ScopeResponse{Resolved: true, OrganizationID: orgID})
}

// Switch godoc
// @Summary      Cambiar la organización activa
// @Tags         scope
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchScopeRequest  true  "Organización destino"
// @Success      200   {object}  dto.ScopeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/scope [put]
func (h *ScopeHandler) Switch(c *fiber.Ctx) error {
	var in dto.SwitchScopeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrganizationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "organization_id es requerido"})
	}
	if err := h.resolver.Switch(GetUserID(c), in.OrganizationID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ScopeResponse{Resolved: true, OrganizationID: in.OrganizationID})
}

// Memberships godoc
// @Summary      Membresías del usuario autenticado
// @Tags         scope
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MembershipListResponse
// @Router       /api/scope/memberships [get]
func (h *ScopeHandler) Memberships(c *fiber.Ctx) error {
	items, err := h.users.ListMemberships(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MembershipListResponse{Items: items})
}
