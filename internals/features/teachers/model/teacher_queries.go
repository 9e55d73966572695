// file: internals/features/teachers/model/teacher_queries.go
package model

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnsureTeacherExists guards FK-carrying writes: every evaluation,
// course, research, service, professional and career row must point at a
// live teacher before it is accepted.
func EnsureTeacherExists(tx *gorm.DB, id uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&TeacherModel{}).
		Where("teacher_id = ? AND teacher_deleted_at IS NULL", id).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check teacher")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	return nil
}

// FindTeacherByID returns the teacher row or a typed 404.
func FindTeacherByID(tx *gorm.DB, id uuid.UUID) (TeacherModel, error) {
	var t TeacherModel
	if err := tx.Where("teacher_id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return t, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return t, err
	}
	return t, nil
}
