package controller

import (
	"github.com/gofiber/fiber/v2"

	"mdceramica_backend/internals/cache"
	"mdceramica_backend/internals/features/workshop/students/dto"
	helper "mdceramica_backend/internals/helpers"
)

// POST /api/students/:id/classes (body membawa month_id)
func (ctrl *StudentController) AddClass(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateClassRequest
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

	out, err := ctrl.Svc.AddClass(c.UserContext(), id, &req)
	if err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonCreated(c, "Clase agregada", out)
}

// PUT /api/classes/:id
func (ctrl *StudentController) UpdateClass(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateClassRequest
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

	out, err := ctrl.Svc.UpdateClass(c.UserContext(), id, &req)
	if err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonUpdated(c, "Clase actualizada", out)
}

// DELETE /api/classes/:id
func (ctrl *StudentController) DeleteClass(c *fiber.Ctx) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Svc.DeleteClass(c.UserContext(), id); err != nil {
		return ServiceError(err)
	}
	ctrl.Cache.Invalidate(c.UserContext())
	return helper.JsonDeleted(c, "Clase eliminada", fiber.Map{"id": id})
}

// GET /api/classes (terbaru dulu)
func (ctrl *StudentController) ListClasses(c *fiber.Ctx) error {
	list, err := cache.Remember(c.UserContext(), ctrl.Cache, "classes", func() ([]dto.ClassResponse, error) {
		return ctrl.Svc.ListClasses(c.UserContext())
	})
	if err != nil {
		return ServiceError(err)
	}
	return helper.JsonList(c, "ok", list)
}

// GET /api/calendar?search=
func (ctrl *StudentController) Calendar(c *fiber.Ctx) error {
	list, err := ctrl.ListStudents(c)
	if err != nil {
		return ServiceError(err)
	}
	return helper.JsonOK(c, "ok", dto.BuildCalendar(list))
}
