package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laqus/deskguard-api/internal/application/dto"
	"github.com/laqus/deskguard-api/internal/application/scope"
	"github.com/laqus/deskguard-api/internal/domain"
	"github.com/laqus/deskguard-api/internal/domain/access"
)

// RequireScope resuelve la organización activa de la sesión y la deja en
// c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - Si la sesión no tiene organización resuelta intenta la resolución por
//     defecto (primera membresía). Cubre el reinicio del servidor: el token
//     sigue siendo válido pero el registro de sesiones se perdió.
//   - 412 Precondition Failed → el usuario no tiene membresías; ninguna
//     consulta llega al store mientras el alcance no esté resuelto.
func RequireScope(resolver *scope.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
		}
		orgID, err := resolver.Active(userID)
		if errors.Is(err, domain.ErrScopeUnresolved) {
			orgID, err = resolver.ResolveDefault(userID)
		}
		if err != nil || orgID == "" {
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{
				Code:    "SCOPE_UNRESOLVED",
				Message: "ninguna organización activa para esta sesión",
			})
		}
		c.Locals(LocalOrgID, orgID)
		return c.Next()
	}
}

// RequireMutate exige que el rol de membresía en la organización activa
// permita mutaciones (admin o editor). Debe usarse DESPUÉS de RequireScope.
// Un viewer recibe 403 sin que la petición toque el store.
func RequireMutate(resolver *scope.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := resolver.EffectiveRole(GetUserID(c))
		if err != nil {
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{
				Code:    "SCOPE_UNRESOLVED",
				Message: "ninguna organización activa para esta sesión",
			})
		}
		if !access.CanMutate(role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol actual no permite modificar el inventario",
			})
		}
		return c.Next()
	}
}
