// file: internals/features/portfolio/research/controller/research_controller.go
package controller

import (
	"errors"
	"strings"

	researchDTO "teachereval_backend/internals/features/portfolio/research/dto"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResearchController struct {
	DB *gorm.DB
}

// POST /api/a/research
func (h *ResearchController) CreateResearch(c *fiber.Ctx) error {
	var req researchDTO.CreateResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created researchModel.ResearchModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create research output")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Research output created", researchDTO.FromResearchModel(created))
}

// GET /api/a/research?teacher_id=&kind=
func (h *ResearchController) ListResearch(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&researchModel.ResearchModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("research_teacher_id = ?", id)
	}
	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" {
		if !researchModel.ResearchKind(kind).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid research kind")
		}
		q = q.Where("research_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count research outputs")
	}

	var rows []researchModel.ResearchModel
	if err := q.Order("research_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list research outputs")
	}

	return helper.JsonList(c, "ok", researchDTO.FromResearchModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/research/:id
func (h *ResearchController) UpdateResearch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid research id")
	}

	var req researchDTO.UpdateResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m researchModel.ResearchModel
	if err := h.DB.Where("research_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Research output not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch research output")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update research output")
	}
	return helper.JsonUpdated(c, "Research output updated", researchDTO.FromResearchModel(m))
}

// DELETE /api/a/research/:id?force=true
func (h *ResearchController) DeleteResearch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid research id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("research_id = ?", id).Delete(&researchModel.ResearchModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete research output")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Research output not found")
	}
	return helper.JsonDeleted(c, "Research output deleted", fiber.Map{"research_id": id})
}
