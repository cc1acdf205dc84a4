// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware: origins dipisah koma (CORS_ORIGINS). "*" = semua origin
// tanpa credentials.
func CorsMiddleware(origins string) fiber.Handler {
	parts := make([]string, 0, 4)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	allow := strings.Join(parts, ", ")
	if allow == "" {
		allow = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders:    "X-Request-ID, Content-Disposition",
		AllowCredentials: allow != "*",
	})
}
