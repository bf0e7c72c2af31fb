// internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "kampusku_backend/internals/features/academics/classes/dto"
	classService "kampusku_backend/internals/features/academics/classes/service"
	helper "kampusku_backend/internals/helpers"
)

type ClassController struct {
	DB      *gorm.DB
	Service *classService.ClassService
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:      db,
		Service: classService.NewClassService(db),
	}
}

var validateClass = validator.New()

// POST /api/a/classes
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateClass.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	cls, aerr := h.Service.CreateClass(&req)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonCreated(c, "class created", classDTO.FromClassModel(*cls))
}

// GET /api/u/classes/:id
func (h *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	cls, aerr := h.Service.GetClassByID(id)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonOK(c, "ok", classDTO.FromClassModel(*cls))
}

// GET /api/u/classes/:id/members — hanya member kelas
func (h *ClassController) GetClassMembers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	members, aerr := h.Service.GetMembersOfClass(callerID, id)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}

	out := make([]classDTO.ClassMemberResponse, 0, len(members))
	for _, mrow := range members {
		if mrow.User == nil {
			continue
		}
		out = append(out, classDTO.FromClassMember(*mrow.User))
	}
	return helper.JsonOK(c, "ok", out)
}

// PUT /api/a/classes/:id/lecturers
func (h *ClassController) AssignLecturers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req classDTO.AssignLecturersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateClass.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	assigned, aerr := h.Service.AssignLecturers(id, req.UserIDs)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonUpdated(c, "lecturers assigned", fiber.Map{"assigned_user_ids": assigned})
}

// PUT /api/a/classes/:id
func (h *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateClass.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	cls, aerr := h.Service.EditClass(id, &req)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonUpdated(c, "class updated", classDTO.FromClassModel(*cls))
}

// DELETE /api/a/classes/:id
func (h *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if aerr := h.Service.DeleteClass(id); aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonDeleted(c, "class deleted", nil)
}

// GET /api/u/classes?subject_id=&page=&per_page=
func (h *ClassController) GetAllClasses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	var subjectID *uuid.UUID
	if raw := c.Query("subject_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		subjectID = &id
	}

	classes, total, aerr := h.Service.ListClasses(subjectID, nil, p.Offset, p.Limit)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", classDTO.FromClassModels(classes), &pagination)
}

// GET /api/u/classes/mine?page=&per_page=
func (h *ClassController) GetMyClasses(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 200)

	classes, total, aerr := h.Service.ListClasses(nil, &callerID, p.Offset, p.Limit)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", classDTO.FromClassModels(classes), &pagination)
}

// GET /api/u/classes/schedules?date=YYYY-MM-DD (default: hari ini)
func (h *ClassController) GetMySchedulesByDay(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date harus format YYYY-MM-DD")
		}
		date = parsed
	}

	schedules, aerr := h.Service.SchedulesByDay(callerID, date)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonOK(c, "ok", schedules)
}
