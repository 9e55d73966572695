// file: internals/features/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	// Identity & profile
	TeacherFullName   string    `gorm:"column:teacher_full_name;type:varchar(160);not null"        json:"teacher_full_name"`
	TeacherEmail      string    `gorm:"column:teacher_email;type:varchar(160);not null;uniqueIndex:uq_teachers_email,where:teacher_deleted_at IS NULL" json:"teacher_email"`
	TeacherDepartment string    `gorm:"column:teacher_department;type:varchar(120);not null;index" json:"teacher_department"`
	TeacherPosition   string    `gorm:"column:teacher_position;type:varchar(120);not null"         json:"teacher_position"`
	TeacherHireDate   time.Time `gorm:"column:teacher_hire_date;type:date;not null"                json:"teacher_hire_date"`

	// Status & audit
	TeacherIsActive  bool           `gorm:"column:teacher_is_active;not null;default:true"                          json:"teacher_is_active"`
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;default:now()"       json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;default:now()"       json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"                                         json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
