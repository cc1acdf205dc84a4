package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"mdceramica_backend/internals/configs"
	"mdceramica_backend/internals/middlewares/logger"
)

// SetupMiddlewares urutan: recover → request-id → access log → cors → compress/etag.
// Limiter dipasang di grup /api oleh route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware(configs.GetEnvBool("PANIC_STACKTRACE", true)))
	app.Use(RequestID(time.Duration(configs.GetEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second))
	if configs.GetEnvBool("ACCESS_LOG", true) {
		app.Use(logger.LoggerMiddleware(configs.AppTimezone))
	}
	app.Use(CorsMiddleware(configs.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
