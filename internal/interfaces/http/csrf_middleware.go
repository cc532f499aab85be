package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/pkg/csrf"
)

// CSRFHeader header donde el cliente envía el token anti-CSRF.
const CSRFHeader = "X-CSRF-Token"

// csrfExempt rutas mutantes que no exigen token: son las que establecen la
// sesión, antes de que el cliente pueda pedir un token.
var csrfExempt = map[string]bool{
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// CSRFMiddleware valida el token anti-CSRF en verbos mutantes. Los GET/HEAD y
// las rutas exentas pasan directo; token ausente, alterado o expirado → 403.
func CSRFMiddleware(signer *csrf.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if csrfExempt[c.Path()] {
			return c.Next()
		}
		token := c.Get(CSRFHeader)
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CSRF_MISSING", Message: "token CSRF requerido"})
		}
		if err := signer.Validate(token); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CSRF_INVALID", Message: "token CSRF inválido o expirado"})
		}
		return c.Next()
	}
}

// CSRFTokenHandler emite un token nuevo para el cliente (GET /api/csrf-token).
func CSRFTokenHandler(signer *csrf.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := signer.Issue()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"csrf_token": token})
	}
}
