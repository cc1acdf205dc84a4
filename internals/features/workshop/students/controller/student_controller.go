// file: internals/features/workshop/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mdceramica_backend/internals/cache"
	"mdceramica_backend/internals/features/workshop/students/dto"
	"mdceramica_backend/internals/features/workshop/students/service"
	helper "mdceramica_backend/internals/helpers"
)

type StudentController struct {
	Svc   *service.StudentService
	Cache cache.Cache
}

func NewStudentController(db *gorm.DB, c cache.Cache) *StudentController {
	if c == nil {
		c = cache.Noop{}
	}
	return &StudentController{Svc: service.NewStudentService(db), Cache: c}
}

/* ===================== helpers ===================== */

func ParseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}

// ServiceError memetakan sentinel service ke *fiber.Error; sisanya diteruskan
// ke ErrorHandler (500).
func ServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	case errors.Is(err, service.ErrMonthNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Mes no encontrado para este alumno")
	case errors.Is(err, service.ErrClassNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
	default:
		return err
	}
}

func searchParam(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Query("search"))
}

// ListStudents dipakai juga oleh calendar & reports (lewat cache).
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) ([]dto.StudentResponse, error) {
	search := searchParam(c)
	return cache.Remember(c.UserContext(), ctrl.Cache, "students:"+strings.ToLower(search), func() ([]dto.StudentResponse, error) {
		return ctrl.Svc.List(c.UserContext(), search)
	})
}

/* ===================== STUDENTS ===================== */

// GET /api/students?search=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	list, err := ctrl.ListStudents(c)
	if err != nil {
		return ServiceError(err)
	}
	return helper.JsonList(c, "ok", list)
}

// GET /api/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	out, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return ServiceError(err)
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if failed, err := helper.ValidationFailed(c, &req); failed {
		return err
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Svc.Create(c.UserContext(), &req)
	if err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonCreated(c, "Alumno creado", out)
}

// PATCH /api/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if failed, err := helper.ValidationFailed(c, &req); failed {
		return err
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Svc.Update(c.UserContext(), id, &req)
	if err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonUpdated(c, "Alumno actualizado", out)
}

// DELETE /api/students/:id (kelas & bulan ikut terhapus)
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonDeleted(c, "Alumno eliminado", fiber.Map{"id": id})
}

/* ===================== MONTHS ===================== */

// POST /api/students/:id/months
func (ctrl *StudentController) AddMonth(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if failed, err := helper.ValidationFailed(c, &req); failed {
		return err
	}

	out, err := ctrl.Svc.AddMonth(c.UserContext(), id, req.Label)
	if err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonCreated(c, "Mes agregado", out)
}
