// file: internals/features/workshop/students/route/workshop_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	studentController "mdceramica_backend/internals/features/workshop/students/controller"
)

func StudentRoutes(r fiber.Router, ctl *studentController.StudentController) {
	students := r.Group("/students")
	{
		students.Get("/", ctl.List)
		students.Post("/", ctl.Create)
		students.Get("/:id", ctl.GetByID)
		students.Patch("/:id", ctl.Update)
		students.Delete("/:id", ctl.Delete)
		students.Post("/:id/months", ctl.AddMonth)
		students.Post("/:id/classes", ctl.AddClass)
	}

	classes := r.Group("/classes")
	{
		classes.Get("/", ctl.ListClasses)
		classes.Put("/:id", ctl.UpdateClass)
		classes.Delete("/:id", ctl.DeleteClass)
	}

	r.Get("/calendar", ctl.Calendar)
}
