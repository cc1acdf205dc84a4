package route

import (
	"github.com/gofiber/fiber/v2"

	reportsController "mdceramica_backend/internals/features/workshop/reports/controller"
)

func ReportsRoutes(r fiber.Router, ctl *reportsController.ReportsController, importGuard ...fiber.Handler) {
	r.Get("/stats", ctl.Stats)
	r.Get("/students/:id/summary", ctl.Summary)
	r.Get("/export.xlsx", ctl.Export)

	handlers := append(append([]fiber.Handler{}, importGuard...), ctl.Import)
	r.Post("/import", handlers...)
}
