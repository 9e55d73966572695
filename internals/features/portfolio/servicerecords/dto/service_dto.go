// file: internals/features/portfolio/servicerecords/dto/service_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "teachereval_backend/internals/features/portfolio/servicerecords/model"
)

type CreateServiceRequest struct {
	TeacherID    uuid.UUID  `json:"service_teacher_id"   form:"service_teacher_id"   validate:"required"`
	Kind         string     `json:"service_kind"         form:"service_kind"         validate:"required,oneof=committee review community"`
	Organization string     `json:"service_organization" form:"service_organization" validate:"required,min=1,max=200"`
	Role         string     `json:"service_role"         form:"service_role"         validate:"required,min=1,max=120"`
	StartDate    time.Time  `json:"service_start_date"   form:"service_start_date"   validate:"required"`
	EndDate      *time.Time `json:"service_end_date"     form:"service_end_date"`
	Hours        float64    `json:"service_hours"        form:"service_hours"        validate:"gte=0"`
}

func (r *CreateServiceRequest) Normalize() {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Organization = strings.TrimSpace(r.Organization)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *CreateServiceRequest) ToModel() m.ServiceModel {
	return m.ServiceModel{
		ServiceTeacherID:    r.TeacherID,
		ServiceKind:         m.ServiceKind(r.Kind),
		ServiceOrganization: r.Organization,
		ServiceRole:         r.Role,
		ServiceStartDate:    r.StartDate,
		ServiceEndDate:      r.EndDate,
		ServiceHours:        r.Hours,
	}
}

type UpdateServiceRequest struct {
	Organization *string    `json:"service_organization" form:"service_organization" validate:"omitempty,min=1,max=200"`
	Role         *string    `json:"service_role"         form:"service_role"         validate:"omitempty,min=1,max=120"`
	StartDate    *time.Time `json:"service_start_date"   form:"service_start_date"`
	EndDate      *time.Time `json:"service_end_date"     form:"service_end_date"`
	Hours        *float64   `json:"service_hours"        form:"service_hours"        validate:"omitempty,gte=0"`
}

func (r *UpdateServiceRequest) Apply(s *m.ServiceModel) {
	if r.Organization != nil {
		s.ServiceOrganization = strings.TrimSpace(*r.Organization)
	}
	if r.Role != nil {
		s.ServiceRole = strings.TrimSpace(*r.Role)
	}
	if r.StartDate != nil {
		s.ServiceStartDate = *r.StartDate
	}
	if r.EndDate != nil {
		s.ServiceEndDate = r.EndDate
	}
	if r.Hours != nil {
		s.ServiceHours = *r.Hours
	}
}

type ServiceResponse struct {
	ServiceID    uuid.UUID  `json:"service_id"`
	TeacherID    uuid.UUID  `json:"service_teacher_id"`
	Kind         string     `json:"service_kind"`
	Organization string     `json:"service_organization"`
	Role         string     `json:"service_role"`
	StartDate    time.Time  `json:"service_start_date"`
	EndDate      *time.Time `json:"service_end_date,omitempty"`
	Hours        float64    `json:"service_hours"`
	CreatedAt    time.Time  `json:"service_created_at"`
	UpdatedAt    time.Time  `json:"service_updated_at"`
}

func FromServiceModel(s m.ServiceModel) ServiceResponse {
	return ServiceResponse{
		ServiceID:    s.ServiceID,
		TeacherID:    s.ServiceTeacherID,
		Kind:         string(s.ServiceKind),
		Organization: s.ServiceOrganization,
		Role:         s.ServiceRole,
		StartDate:    s.ServiceStartDate,
		EndDate:      s.ServiceEndDate,
		Hours:        s.ServiceHours,
		CreatedAt:    s.ServiceCreatedAt,
		UpdatedAt:    s.ServiceUpdatedAt,
	}
}

func FromServiceModels(ss []m.ServiceModel) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromServiceModel(s))
	}
	return out
}
