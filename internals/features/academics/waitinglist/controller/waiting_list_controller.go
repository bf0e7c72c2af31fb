// internals/features/academics/waitinglist/controller/waiting_list_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	wlDTO "kampusku_backend/internals/features/academics/waitinglist/dto"
	wlRepository "kampusku_backend/internals/features/academics/waitinglist/repository"
	wlService "kampusku_backend/internals/features/academics/waitinglist/service"
	helper "kampusku_backend/internals/helpers"
)

type WaitingListController struct {
	DB      *gorm.DB
	Service *wlService.WaitingListService
}

func NewWaitingListController(db *gorm.DB) *WaitingListController {
	return &WaitingListController{
		DB:      db,
		Service: wlService.NewWaitingListService(wlRepository.NewWaitingListRepository(db)),
	}
}

var validateWaitingList = validator.New()

// POST /api/u/classes/registration — daftar atau batal, tergantung is_cancelled.
func (h *WaitingListController) RegisterOrCancel(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req wlDTO.ClassRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateWaitingList.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	entry, aerr := h.Service.RegisterOrCancel(callerID, classID, req.IsCancelled)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	if req.IsCancelled {
		return helper.JsonDeleted(c, "request cancelled", fiber.Map{"class_id": classID})
	}
	return helper.JsonCreated(c, "request submitted", wlDTO.FromWaitingListEntry(*entry))
}

// GET /api/l/classes/:id/waiting-list?status=
func (h *WaitingListController) GetWaitingListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q wlDTO.ListWaitingListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	items, aerr := h.Service.ListForLecturer(callerID, classID, q.Status)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonList(c, "ok", items, nil)
}

// PUT /api/l/waiting-list/:id — keputusan accept/reject atas satu request.
func (h *WaitingListController) DecideWaitingListEntry(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req wlDTO.WaitingListDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateWaitingList.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	entry, aerr := h.Service.Decide(callerID, entryID, *req.IsAccepted)
	if aerr != nil {
		return helper.JsonAppError(c, aerr)
	}
	return helper.JsonUpdated(c, "request decided", wlDTO.FromWaitingListEntry(*entry))
}
