package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic; ErrorHandler yang merender 500.
func RecoveryMiddleware(stackTrace bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: stackTrace,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] %s %s: %v", c.Method(), c.Path(), e)
		},
	})
}
