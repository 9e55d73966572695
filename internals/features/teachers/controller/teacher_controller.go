// file: internals/features/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	teacherDTO "teachereval_backend/internals/features/teachers/dto"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/teachers
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created teacherModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// duplicate email check, ignore soft-deleted rows
		var cnt int64
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("lower(teacher_email) = lower(?) AND teacher_deleted_at IS NULL", req.Email).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email is already in use")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email is already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Teacher created", teacherDTO.FromTeacherModel(created))
}

/* =========================================================
   GET BY ID
   GET /api/a/teachers/:id
   ========================================================= */
func (h *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	var m teacherModel.TeacherModel
	if err := h.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonOK(c, "ok", teacherDTO.FromTeacherModel(m))
}

/* =========================================================
   LIST
   GET /api/a/teachers?department=&q=&page=&per_page=
   ========================================================= */
func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&teacherModel.TeacherModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("teacher_department = ?", dept)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(teacher_full_name) LIKE ? OR lower(teacher_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []teacherModel.TeacherModel
	if err := q.Order("teacher_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.JsonList(c, "ok", teacherDTO.FromTeacherModels(rows), helper.BuildPagination(paging, total))
}

/* =========================================================
   UPDATE (partial)
   PUT /api/a/teachers/:id
   ========================================================= */
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m teacherModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
		}

		if req.Email != nil && !strings.EqualFold(*req.Email, m.TeacherEmail) {
			var cnt int64
			if err := tx.Model(&teacherModel.TeacherModel{}).
				Where("lower(teacher_email) = lower(?) AND teacher_id <> ? AND teacher_deleted_at IS NULL", *req.Email, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email is already in use")
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Teacher updated", teacherDTO.FromTeacherModel(m))
}

/* =========================================================
   DELETE (soft; ?force=true hard-deletes)
   DELETE /api/a/teachers/:id
   ========================================================= */
func (h *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}
	force := strings.EqualFold(c.Query("force"), "true")

	q := h.DB
	if force {
		q = q.Unscoped()
	}
	res := q.Where("teacher_id = ?", id).Delete(&teacherModel.TeacherModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id, "force": force})
}
