// file: internals/features/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "teachereval_backend/internals/features/courses/model"
)

type CreateCourseRequest struct {
	TeacherID  uuid.UUID `json:"course_teacher_id" form:"course_teacher_id" validate:"required"`
	Code       string    `json:"course_code"       form:"course_code"       validate:"required,min=1,max=40"`
	Name       string    `json:"course_name"       form:"course_name"       validate:"required,min=1,max=160"`
	Semester   string    `json:"course_semester"   form:"course_semester"   validate:"required,oneof=spring summer fall winter"`
	Year       int       `json:"course_year"       form:"course_year"       validate:"required,min=1900,max=2200"`
	Enrollment int       `json:"course_enrollment" form:"course_enrollment" validate:"min=0"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.Semester = strings.ToLower(strings.TrimSpace(r.Semester))
}

func (r *CreateCourseRequest) ToModel() m.CourseModel {
	return m.CourseModel{
		CourseTeacherID:  r.TeacherID,
		CourseCode:       r.Code,
		CourseName:       r.Name,
		CourseSemester:   r.Semester,
		CourseYear:       r.Year,
		CourseEnrollment: r.Enrollment,
	}
}

type UpdateCourseRequest struct {
	Code       *string `json:"course_code"       form:"course_code"       validate:"omitempty,min=1,max=40"`
	Name       *string `json:"course_name"       form:"course_name"       validate:"omitempty,min=1,max=160"`
	Semester   *string `json:"course_semester"   form:"course_semester"   validate:"omitempty,oneof=spring summer fall winter"`
	Year       *int    `json:"course_year"       form:"course_year"       validate:"omitempty,min=1900,max=2200"`
	Enrollment *int    `json:"course_enrollment" form:"course_enrollment" validate:"omitempty,min=0"`
}

func (r *UpdateCourseRequest) Apply(course *m.CourseModel) {
	if r.Code != nil {
		course.CourseCode = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Name != nil {
		course.CourseName = strings.TrimSpace(*r.Name)
	}
	if r.Semester != nil {
		course.CourseSemester = strings.ToLower(strings.TrimSpace(*r.Semester))
	}
	if r.Year != nil {
		course.CourseYear = *r.Year
	}
	if r.Enrollment != nil {
		course.CourseEnrollment = *r.Enrollment
	}
}

type CourseResponse struct {
	CourseID   uuid.UUID `json:"course_id"`
	TeacherID  uuid.UUID `json:"course_teacher_id"`
	Code       string    `json:"course_code"`
	Name       string    `json:"course_name"`
	Semester   string    `json:"course_semester"`
	Year       int       `json:"course_year"`
	Enrollment int       `json:"course_enrollment"`
	CreatedAt  time.Time `json:"course_created_at"`
	UpdatedAt  time.Time `json:"course_updated_at"`
}

func FromCourseModel(c m.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:   c.CourseID,
		TeacherID:  c.CourseTeacherID,
		Code:       c.CourseCode,
		Name:       c.CourseName,
		Semester:   c.CourseSemester,
		Year:       c.CourseYear,
		Enrollment: c.CourseEnrollment,
		CreatedAt:  c.CourseCreatedAt,
		UpdatedAt:  c.CourseUpdatedAt,
	}
}

func FromCourseModels(cs []m.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCourseModel(c))
	}
	return out
}
