// file: internals/features/portfolio/career/controller/career_controller.go
package controller

import (
	"errors"
	"strings"

	careerDTO "teachereval_backend/internals/features/portfolio/career/dto"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerController struct {
	DB *gorm.DB
}

// POST /api/a/career
func (h *CareerController) CreateCareer(c *fiber.Ctx) error {
	var req careerDTO.CreateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date cannot precede start date")
	}

	var created careerModel.CareerModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create career event")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Career event created", careerDTO.FromCareerModel(created))
}

// GET /api/a/career?teacher_id=&kind=&tier=
func (h *CareerController) ListCareer(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&careerModel.CareerModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("career_teacher_id = ?", id)
	}
	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" {
		if !careerModel.CareerKind(kind).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid career kind")
		}
		q = q.Where("career_kind = ?", kind)
	}
	if tier := strings.ToLower(strings.TrimSpace(c.Query("tier"))); tier != "" {
		if !careerModel.CareerTier(tier).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid career tier")
		}
		q = q.Where("career_tier = ?", tier)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count career events")
	}

	var rows []careerModel.CareerModel
	if err := q.Order("career_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list career events")
	}

	return helper.JsonList(c, "ok", careerDTO.FromCareerModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/career/:id
func (h *CareerController) UpdateCareer(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid career id")
	}

	var req careerDTO.UpdateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m careerModel.CareerModel
	if err := h.DB.Where("career_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Career event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch career event")
	}

	req.Apply(&m)
	if m.CareerEndDate != nil && m.CareerEndDate.Before(m.CareerStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date cannot precede start date")
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update career event")
	}
	return helper.JsonUpdated(c, "Career event updated", careerDTO.FromCareerModel(m))
}

// DELETE /api/a/career/:id?force=true
func (h *CareerController) DeleteCareer(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid career id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("career_id = ?", id).Delete(&careerModel.CareerModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete career event")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Career event not found")
	}
	return helper.JsonDeleted(c, "Career event deleted", fiber.Map{"career_id": id})
}
