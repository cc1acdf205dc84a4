package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mdceramica_backend/internals/cache"
	reportsController "mdceramica_backend/internals/features/workshop/reports/controller"
	reportsRoute "mdceramica_backend/internals/features/workshop/reports/route"
	studentController "mdceramica_backend/internals/features/workshop/students/controller"
	studentRoute "mdceramica_backend/internals/features/workshop/students/route"
	"mdceramica_backend/internals/middlewares"
)

// WorkshopRoutes: siswa, bulan, kelas, kalender, laporan.
func WorkshopRoutes(api fiber.Router, db *gorm.DB, c cache.Cache) {
	students := studentController.NewStudentController(db, c)
	studentRoute.StudentRoutes(api, students)

	reports := reportsController.NewReportsController(students)
	reportsRoute.ReportsRoutes(api, reports, middlewares.ImportRateLimiter())
}
