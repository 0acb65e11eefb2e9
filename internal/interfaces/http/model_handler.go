package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/usecase"
)

// ModelHandler maneja las peticiones HTTP para Model (protegido, con alcance).
type ModelHandler struct {
	uc *usecase.ModelUseCase
}

// NewModelHandler construye el handler.
func NewModelHandler(uc *usecase.ModelUseCase) *ModelHandler {
	return &ModelHandler{uc: uc}
}

// Create godoc
// @Summary      Crear modelo
// @Tags         models
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModelRequest  true  "Datos del modelo"
// @Success      201   {object}  dto.ModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/models [post]
func (h *ModelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateModelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Brand == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, brand y category_id son requeridos"})
	}
	out, err := h.uc.Create(GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener modelo por ID
// @Tags         models
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del modelo"
// @Success      200  {object}  dto.ModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/models/{id} [get]
func (h *ModelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "modelo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar modelos de la organización activa
// @Tags         models
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ModelListResponse
// @Router       /api/models [get]
func (h *ModelHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(GetOrgID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar modelo
// @Tags         models
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del modelo"
// @Param        body  body  dto.UpdateModelRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ModelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/models/{id} [put]
func (h *ModelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateModelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar modelo (rechazado si tiene productos)
// @Tags         models
// @Security     Bearer
// @Param        id  path  string  true  "ID del modelo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/models/{id} [delete]
func (h *ModelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
