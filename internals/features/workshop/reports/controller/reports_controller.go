// file: internals/features/workshop/reports/controller/reports_controller.go
package controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	reportService "mdceramica_backend/internals/features/workshop/reports/service"
	studentController "mdceramica_backend/internals/features/workshop/students/controller"
	helper "mdceramica_backend/internals/helpers"
	"mdceramica_backend/internals/helpers/dbtime"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maksimal ukuran file import (bytes)
const maxImportSize = 5 << 20

type ReportsController struct {
	Students *studentController.StudentController
}

func NewReportsController(students *studentController.StudentController) *ReportsController {
	return &ReportsController{Students: students}
}

// GET /api/stats?search=
func (ctrl *ReportsController) Stats(c *fiber.Ctx) error {
	list, err := ctrl.Students.ListStudents(c)
	if err != nil {
		return studentController.ServiceError(err)
	}
	return helper.JsonOK(c, "ok", reportService.ComputeStats(list))
}

// GET /api/students/:id/summary
func (ctrl *ReportsController) Summary(c *fiber.Ctx) error {
	id, err := studentController.ParseID(c, "id")
	if err != nil {
		return err
	}
	s, err := ctrl.Students.Svc.Get(c.UserContext(), id)
	if err != nil {
		return studentController.ServiceError(err)
	}
	return helper.JsonOK(c, "ok", reportService.Summarize(s))
}

// GET /api/export.xlsx
func (ctrl *ReportsController) Export(c *fiber.Ctx) error {
	list, err := ctrl.Students.Svc.List(c.UserContext(), "")
	if err != nil {
		return studentController.ServiceError(err)
	}
	var buf bytes.Buffer
	if err := reportService.ExportWorkbook(&buf, list); err != nil {
		return err
	}
	name := fmt.Sprintf("mdceramica-%s.xlsx", dbtime.NowInWorkshop().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(name)
	return c.Send(buf.Bytes())
}

// POST /api/import (multipart, field "file")
func (ctrl *ReportsController) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el archivo (campo \"file\")")
	}
	if fh.Size > maxImportSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Archivo demasiado grande")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer f.Close()

	res, err := reportService.ImportStudents(c.UserContext(), ctrl.Students.Svc, f)
	if err != nil {
		if c.UserContext().Err() != nil {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if res.Created > 0 {
		ctrl.Students.Cache.Invalidate(c.UserContext())
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d alumnos importados", res.Created), res)
}
