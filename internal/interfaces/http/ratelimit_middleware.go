package http

import (
	"hash/fnv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/dto"
	"github.com/tu-usuario/stockpilot/pkg/ratelimit"
)

// RateLimitMiddleware aplica el limitador de ventana fija por cliente.
// El identificador combina IP y User-Agent (FNV) para separar clientes
// distintos detrás de un mismo NAT sin guardar el par en claro.
func RateLimitMiddleware(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := limiter.Check(clientIdentifier(c.IP(), c.Get("User-Agent")))

		c.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Max()))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, reintente en " + res.ResetAt.Format("15:04:05"),
			})
		}
		return c.Next()
	}
}

func clientIdentifier(ip, userAgent string) string {
	h := fnv.New64a()
	h.Write([]byte(ip))
	h.Write([]byte{0})
	h.Write([]byte(userAgent))
	return strconv.FormatUint(h.Sum64(), 16)
}
