// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mdceramica_backend/internals/cache"
	"mdceramica_backend/internals/configs"
	"mdceramica_backend/internals/middlewares"
	routeDetails "mdceramica_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, c cache.Cache) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", middlewares.GlobalRateLimiter(configs.GetEnvInt("RATE_LIMIT_PER_MINUTE", 120)))

	log.Println("[INFO] Mounting Workshop routes...")
	routeDetails.WorkshopRoutes(api, db, c)
}
