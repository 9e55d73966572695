// file: internals/features/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "teachereval_backend/internals/features/teachers/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateTeacherRequest struct {
	FullName   string    `json:"teacher_full_name"  form:"teacher_full_name"  validate:"required,min=1,max=160"`
	Email      string    `json:"teacher_email"      form:"teacher_email"      validate:"required,email,max=160"`
	Department string    `json:"teacher_department" form:"teacher_department" validate:"required,min=1,max=120"`
	Position   string    `json:"teacher_position"   form:"teacher_position"   validate:"required,min=1,max=120"`
	HireDate   time.Time `json:"teacher_hire_date"  form:"teacher_hire_date"  validate:"required"`
	IsActive   *bool     `json:"teacher_is_active"  form:"teacher_is_active"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
	r.Position = strings.TrimSpace(r.Position)
}

func (r *CreateTeacherRequest) ToModel() m.TeacherModel {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return m.TeacherModel{
		TeacherFullName:   r.FullName,
		TeacherEmail:      r.Email,
		TeacherDepartment: r.Department,
		TeacherPosition:   r.Position,
		TeacherHireDate:   r.HireDate,
		TeacherIsActive:   isActive,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateTeacherRequest struct {
	FullName   *string    `json:"teacher_full_name"  form:"teacher_full_name"  validate:"omitempty,min=1,max=160"`
	Email      *string    `json:"teacher_email"      form:"teacher_email"      validate:"omitempty,email,max=160"`
	Department *string    `json:"teacher_department" form:"teacher_department" validate:"omitempty,min=1,max=120"`
	Position   *string    `json:"teacher_position"   form:"teacher_position"   validate:"omitempty,min=1,max=120"`
	HireDate   *time.Time `json:"teacher_hire_date"  form:"teacher_hire_date"`
	IsActive   *bool      `json:"teacher_is_active"  form:"teacher_is_active"`
}

func (r *UpdateTeacherRequest) Normalize() {
	trimPtr := func(pp **string, lower bool) {
		if pp == nil || *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if lower {
			v = strings.ToLower(v)
		}
		*pp = &v
	}
	trimPtr(&r.FullName, false)
	trimPtr(&r.Email, true)
	trimPtr(&r.Department, false)
	trimPtr(&r.Position, false)
}

func (r *UpdateTeacherRequest) Apply(t *m.TeacherModel) {
	if r.FullName != nil {
		t.TeacherFullName = *r.FullName
	}
	if r.Email != nil {
		t.TeacherEmail = *r.Email
	}
	if r.Department != nil {
		t.TeacherDepartment = *r.Department
	}
	if r.Position != nil {
		t.TeacherPosition = *r.Position
	}
	if r.HireDate != nil {
		t.TeacherHireDate = *r.HireDate
	}
	if r.IsActive != nil {
		t.TeacherIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TeacherResponse struct {
	TeacherID  uuid.UUID `json:"teacher_id"`
	FullName   string    `json:"teacher_full_name"`
	Email      string    `json:"teacher_email"`
	Department string    `json:"teacher_department"`
	Position   string    `json:"teacher_position"`
	HireDate   time.Time `json:"teacher_hire_date"`
	IsActive   bool      `json:"teacher_is_active"`
	CreatedAt  time.Time `json:"teacher_created_at"`
	UpdatedAt  time.Time `json:"teacher_updated_at"`
}

func FromTeacherModel(t m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:  t.TeacherID,
		FullName:   t.TeacherFullName,
		Email:      t.TeacherEmail,
		Department: t.TeacherDepartment,
		Position:   t.TeacherPosition,
		HireDate:   t.TeacherHireDate,
		IsActive:   t.TeacherIsActive,
		CreatedAt:  t.TeacherCreatedAt,
		UpdatedAt:  t.TeacherUpdatedAt,
	}
}

func FromTeacherModels(ts []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTeacherModel(t))
	}
	return out
}
