// internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/apperr"
	subjectDTO "kampusku_backend/internals/features/academics/subjects/dto"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validateSubject = validator.New()

// POST /api/a/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateSubject.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonAppError(c, apperr.BadRequest(apperr.CodeUniqueConstraint, "subject code already used"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subject")
	}
	return helper.JsonCreated(c, "subject created", subjectDTO.FromSubjectModel(*m))
}

// GET /api/u/subjects/:id
func (h *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonAppError(c, apperr.NotFound(apperr.CodeCommonNotFound, "subject's not found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}
	return helper.JsonOK(c, "ok", subjectDTO.FromSubjectModel(m))
}

// GET /api/u/subjects?search=&page=&per_page=
// search: name contains ATAU code prefix (mengikuti perilaku listing lama)
func (h *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	tx := h.DB.Model(&subjectModel.SubjectModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := strings.ToLower(search)
		tx = tx.Where("lower(subject_name) LIKE ? OR lower(subject_code) LIKE ?", "%"+like+"%", like+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung subject")
	}

	var ms []subjectModel.SubjectModel
	if err := tx.Order("subject_created_at ASC").Offset(p.Offset).Limit(p.Limit).Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", subjectDTO.FromSubjectModels(ms), &pagination)
}

// PUT /api/a/subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonAppError(c, apperr.NotFound(apperr.CodeCommonNotFound, "subject's not found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSubject.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonAppError(c, apperr.BadRequest(apperr.CodeUniqueConstraint, "subject code already used"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update subject")
	}
	return helper.JsonUpdated(c, "subject updated", subjectDTO.FromSubjectModel(m))
}

// DELETE /api/a/subjects/:id
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonAppError(c, apperr.NotFound(apperr.CodeCommonNotFound, "subject's not found"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	return helper.JsonDeleted(c, "subject deleted", nil)
}
