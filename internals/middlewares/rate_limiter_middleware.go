package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "mdceramica_backend/internals/helpers"
)

// Global limiter: untuk semua endpoint /api
func GlobalRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = 120
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Demasiadas solicitudes. Intentá de nuevo en un minuto.")
		},
	})
}

// Import XLSX lebih berat, dibatasi lebih ketat
func ImportRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Demasiadas importaciones. Esperá un momento.")
		},
	})
}
