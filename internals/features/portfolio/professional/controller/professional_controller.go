// file: internals/features/portfolio/professional/controller/professional_controller.go
package controller

import (
	"errors"
	"strings"

	professionalDTO "teachereval_backend/internals/features/portfolio/professional/dto"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalController struct {
	DB *gorm.DB
}

// POST /api/a/professional
func (h *ProfessionalController) CreateProfessional(c *fiber.Ctx) error {
	var req professionalDTO.CreateProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created professionalModel.ProfessionalModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create professional development record")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Professional development record created", professionalDTO.FromProfessionalModel(created))
}

// GET /api/a/professional?teacher_id=&kind=
func (h *ProfessionalController) ListProfessional(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&professionalModel.ProfessionalModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("professional_teacher_id = ?", id)
	}
	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" {
		if !professionalModel.ProfessionalKind(kind).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid professional development kind")
		}
		q = q.Where("professional_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count professional development records")
	}

	var rows []professionalModel.ProfessionalModel
	if err := q.Order("professional_completion_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list professional development records")
	}

	return helper.JsonList(c, "ok", professionalDTO.FromProfessionalModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/professional/:id
func (h *ProfessionalController) UpdateProfessional(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid professional development id")
	}

	var req professionalDTO.UpdateProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m professionalModel.ProfessionalModel
	if err := h.DB.Where("professional_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Professional development record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch professional development record")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update professional development record")
	}
	return helper.JsonUpdated(c, "Professional development record updated", professionalDTO.FromProfessionalModel(m))
}

// DELETE /api/a/professional/:id?force=true
func (h *ProfessionalController) DeleteProfessional(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid professional development id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("professional_id = ?", id).Delete(&professionalModel.ProfessionalModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete professional development record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Professional development record not found")
	}
	return helper.JsonDeleted(c, "Professional development record deleted", fiber.Map{"professional_id": id})
}
