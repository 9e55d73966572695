// file: internals/features/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// PK & owner
	CourseID        uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTeacherID uuid.UUID `gorm:"column:course_teacher_id;type:uuid;not null;index"               json:"course_teacher_id"`

	// Identity & term
	CourseCode     string `gorm:"column:course_code;type:varchar(40);not null"      json:"course_code"`
	CourseName     string `gorm:"column:course_name;type:varchar(160);not null"     json:"course_name"`
	CourseSemester string `gorm:"column:course_semester;type:varchar(20);not null"  json:"course_semester"`
	CourseYear     int    `gorm:"column:course_year;not null"                       json:"course_year"`

	CourseEnrollment int `gorm:"column:course_enrollment;not null;default:0" json:"course_enrollment"`

	// Audit
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;default:now()" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;default:now()" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"                                   json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
