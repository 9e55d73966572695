// file: internals/features/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"
	"strings"

	evaluationDTO "teachereval_backend/internals/features/evaluations/dto"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationController struct {
	DB *gorm.DB
}

// POST /api/a/evaluations
func (h *EvaluationController) CreateEvaluation(c *fiber.Ctx) error {
	var req evaluationDTO.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created evaluationModel.EvaluationModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}

		// one aggregate row per (teacher, semester, year)
		var cnt int64
		if err := tx.Model(&evaluationModel.EvaluationModel{}).
			Where(`evaluation_teacher_id = ? AND evaluation_semester = ?
				AND evaluation_year = ? AND evaluation_deleted_at IS NULL`,
				req.TeacherID, req.Semester, req.Year).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate evaluation")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Evaluation already recorded for this term")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Evaluation already recorded for this term")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create evaluation")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Evaluation created", evaluationDTO.FromEvaluationModel(created))
}

// GET /api/a/evaluations?teacher_id=&year=
func (h *EvaluationController) ListEvaluations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&evaluationModel.EvaluationModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("evaluation_teacher_id = ?", id)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("evaluation_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count evaluations")
	}

	var rows []evaluationModel.EvaluationModel
	if err := q.Order("evaluation_year DESC, evaluation_semester ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list evaluations")
	}

	return helper.JsonList(c, "ok", evaluationDTO.FromEvaluationModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/evaluations/:id
func (h *EvaluationController) UpdateEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid evaluation id")
	}

	var req evaluationDTO.UpdateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m evaluationModel.EvaluationModel
	if err := h.DB.Where("evaluation_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Evaluation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch evaluation")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update evaluation")
	}
	return helper.JsonUpdated(c, "Evaluation updated", evaluationDTO.FromEvaluationModel(m))
}

// DELETE /api/a/evaluations/:id?force=true
func (h *EvaluationController) DeleteEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid evaluation id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("evaluation_id = ?", id).Delete(&evaluationModel.EvaluationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete evaluation")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Evaluation not found")
	}
	return helper.JsonDeleted(c, "Evaluation deleted", fiber.Map{"evaluation_id": id})
}
