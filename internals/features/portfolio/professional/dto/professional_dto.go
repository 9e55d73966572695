// file: internals/features/portfolio/professional/dto/professional_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "teachereval_backend/internals/features/portfolio/professional/model"
)

type CreateProfessionalRequest struct {
	TeacherID      uuid.UUID `json:"professional_teacher_id"      form:"professional_teacher_id"      validate:"required"`
	Kind           string    `json:"professional_kind"            form:"professional_kind"            validate:"required,oneof=certification training conference education"`
	Title          string    `json:"professional_title"           form:"professional_title"           validate:"required,min=1,max=200"`
	Institution    string    `json:"professional_institution"     form:"professional_institution"     validate:"required,min=1,max=200"`
	CompletionDate time.Time `json:"professional_completion_date" form:"professional_completion_date" validate:"required"`
	DurationHours  float64   `json:"professional_duration_hours"  form:"professional_duration_hours"  validate:"gte=0"`
	CertificateRef *string   `json:"professional_certificate_ref" form:"professional_certificate_ref" validate:"omitempty,max=300"`
}

func (r *CreateProfessionalRequest) Normalize() {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Title = strings.TrimSpace(r.Title)
	r.Institution = strings.TrimSpace(r.Institution)
}

func (r *CreateProfessionalRequest) ToModel() m.ProfessionalModel {
	return m.ProfessionalModel{
		ProfessionalTeacherID:      r.TeacherID,
		ProfessionalKind:           m.ProfessionalKind(r.Kind),
		ProfessionalTitle:          r.Title,
		ProfessionalInstitution:    r.Institution,
		ProfessionalCompletionDate: r.CompletionDate,
		ProfessionalDurationHours:  r.DurationHours,
		ProfessionalCertificateRef: r.CertificateRef,
	}
}

type UpdateProfessionalRequest struct {
	Title          *string    `json:"professional_title"           form:"professional_title"           validate:"omitempty,min=1,max=200"`
	Institution    *string    `json:"professional_institution"     form:"professional_institution"     validate:"omitempty,min=1,max=200"`
	CompletionDate *time.Time `json:"professional_completion_date" form:"professional_completion_date"`
	DurationHours  *float64   `json:"professional_duration_hours"  form:"professional_duration_hours"  validate:"omitempty,gte=0"`
	CertificateRef *string    `json:"professional_certificate_ref" form:"professional_certificate_ref" validate:"omitempty,max=300"`
}

func (r *UpdateProfessionalRequest) Apply(p *m.ProfessionalModel) {
	if r.Title != nil {
		p.ProfessionalTitle = strings.TrimSpace(*r.Title)
	}
	if r.Institution != nil {
		p.ProfessionalInstitution = strings.TrimSpace(*r.Institution)
	}
	if r.CompletionDate != nil {
		p.ProfessionalCompletionDate = *r.CompletionDate
	}
	if r.DurationHours != nil {
		p.ProfessionalDurationHours = *r.DurationHours
	}
	if r.CertificateRef != nil {
		p.ProfessionalCertificateRef = r.CertificateRef
	}
}

type ProfessionalResponse struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	TeacherID      uuid.UUID `json:"professional_teacher_id"`
	Kind           string    `json:"professional_kind"`
	Title          string    `json:"professional_title"`
	Institution    string    `json:"professional_institution"`
	CompletionDate time.Time `json:"professional_completion_date"`
	DurationHours  float64   `json:"professional_duration_hours"`
	CertificateRef *string   `json:"professional_certificate_ref,omitempty"`
	CreatedAt      time.Time `json:"professional_created_at"`
	UpdatedAt      time.Time `json:"professional_updated_at"`
}

func FromProfessionalModel(p m.ProfessionalModel) ProfessionalResponse {
	return ProfessionalResponse{
		ProfessionalID: p.ProfessionalID,
		TeacherID:      p.ProfessionalTeacherID,
		Kind:           string(p.ProfessionalKind),
		Title:          p.ProfessionalTitle,
		Institution:    p.ProfessionalInstitution,
		CompletionDate: p.ProfessionalCompletionDate,
		DurationHours:  p.ProfessionalDurationHours,
		CertificateRef: p.ProfessionalCertificateRef,
		CreatedAt:      p.ProfessionalCreatedAt,
		UpdatedAt:      p.ProfessionalUpdatedAt,
	}
}

func FromProfessionalModels(ps []m.ProfessionalModel) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProfessionalModel(p))
	}
	return out
}
