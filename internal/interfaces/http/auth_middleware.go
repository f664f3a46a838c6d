package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// LocalIdentity clave en c.Locals de la identidad verificada.
const LocalIdentity = "identity"

// IdentityVerifier valida el token y devuelve la identidad del request. Lo implementa *auth.Verifier.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (entity.Identity, error)
}

// AuthMiddleware valida el Bearer Token y deja la Identity en c.Locals.
func AuthMiddleware(v IdentityVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := v.Verify(c.UserContext(), token)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del request (después de AuthMiddleware).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok
}

// RequireCreate corta con 403 antes de leer el cuerpo si el rol no puede crear res.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireCreate(res policy.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := GetIdentity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "identidad no encontrada"})
		}
		if !policy.CanPerform(id, policy.ActionCreate, res, nil) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + id.Role.String() + "' no puede crear " + res.String(),
			})
		}
		return c.Next()
	}
}
