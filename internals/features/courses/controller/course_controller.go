// file: internals/features/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	courseDTO "teachereval_backend/internals/features/courses/dto"
	courseModel "teachereval_backend/internals/features/courses/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
	helper "teachereval_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseController struct {
	DB *gorm.DB
}

// POST /api/a/courses
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created courseModel.CourseModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := teacherModel.EnsureTeacherExists(tx, req.TeacherID); err != nil {
			return err
		}

		// one row per (teacher, code, term)
		var cnt int64
		if err := tx.Model(&courseModel.CourseModel{}).
			Where(`course_teacher_id = ? AND course_code = ?
				AND course_semester = ? AND course_year = ?
				AND course_deleted_at IS NULL`,
				req.TeacherID, req.Code, req.Semester, req.Year).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate course")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Course already exists for this term")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Course created", courseDTO.FromCourseModel(created))
}

// GET /api/a/courses?teacher_id=&year=&page=&per_page=
func (h *CourseController) ListCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&courseModel.CourseModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		q = q.Where("course_teacher_id = ?", id)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("course_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []courseModel.CourseModel
	if err := q.Order("course_year DESC, course_semester ASC, course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.JsonList(c, "ok", courseDTO.FromCourseModels(rows), helper.BuildPagination(paging, total))
}

// PUT /api/a/courses/:id
func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m courseModel.CourseModel
	if err := h.DB.Where("course_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", courseDTO.FromCourseModel(m))
}

// DELETE /api/a/courses/:id?force=true
func (h *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}
	q := h.DB
	if strings.EqualFold(c.Query("force"), "true") {
		q = q.Unscoped()
	}
	res := q.Where("course_id = ?", id).Delete(&courseModel.CourseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}
