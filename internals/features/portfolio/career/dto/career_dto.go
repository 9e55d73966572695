// file: internals/features/portfolio/career/dto/career_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "teachereval_backend/internals/features/portfolio/career/model"
)

type CreateCareerRequest struct {
	TeacherID    uuid.UUID  `json:"career_teacher_id"   form:"career_teacher_id"   validate:"required"`
	Kind         string     `json:"career_kind"         form:"career_kind"         validate:"required,oneof=position award recognition"`
	Title        string     `json:"career_title"        form:"career_title"        validate:"required,min=1,max=200"`
	Organization string     `json:"career_organization" form:"career_organization" validate:"required,min=1,max=200"`
	Tier         string     `json:"career_tier"         form:"career_tier"         validate:"required,oneof=university national international"`
	StartDate    time.Time  `json:"career_start_date"   form:"career_start_date"   validate:"required"`
	EndDate      *time.Time `json:"career_end_date"     form:"career_end_date"`
}

func (r *CreateCareerRequest) Normalize() {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Tier = strings.ToLower(strings.TrimSpace(r.Tier))
	r.Title = strings.TrimSpace(r.Title)
	r.Organization = strings.TrimSpace(r.Organization)
}

func (r *CreateCareerRequest) ToModel() m.CareerModel {
	return m.CareerModel{
		CareerTeacherID:    r.TeacherID,
		CareerKind:         m.CareerKind(r.Kind),
		CareerTitle:        r.Title,
		CareerOrganization: r.Organization,
		CareerTier:         m.CareerTier(r.Tier),
		CareerStartDate:    r.StartDate,
		CareerEndDate:      r.EndDate,
	}
}

type UpdateCareerRequest struct {
	Title        *string    `json:"career_title"        form:"career_title"        validate:"omitempty,min=1,max=200"`
	Organization *string    `json:"career_organization" form:"career_organization" validate:"omitempty,min=1,max=200"`
	Tier         *string    `json:"career_tier"         form:"career_tier"         validate:"omitempty,oneof=university national international"`
	StartDate    *time.Time `json:"career_start_date"   form:"career_start_date"`
	EndDate      *time.Time `json:"career_end_date"     form:"career_end_date"`
}

func (r *UpdateCareerRequest) Apply(ev *m.CareerModel) {
	if r.Title != nil {
		ev.CareerTitle = strings.TrimSpace(*r.Title)
	}
	if r.Organization != nil {
		ev.CareerOrganization = strings.TrimSpace(*r.Organization)
	}
	if r.Tier != nil {
		ev.CareerTier = m.CareerTier(strings.ToLower(strings.TrimSpace(*r.Tier)))
	}
	if r.StartDate != nil {
		ev.CareerStartDate = *r.StartDate
	}
	if r.EndDate != nil {
		ev.CareerEndDate = r.EndDate
	}
}

type CareerResponse struct {
	CareerID     uuid.UUID  `json:"career_id"`
	TeacherID    uuid.UUID  `json:"career_teacher_id"`
	Kind         string     `json:"career_kind"`
	Title        string     `json:"career_title"`
	Organization string     `json:"career_organization"`
	Tier         string     `json:"career_tier"`
	StartDate    time.Time  `json:"career_start_date"`
	EndDate      *time.Time `json:"career_end_date,omitempty"`
	CreatedAt    time.Time  `json:"career_created_at"`
	UpdatedAt    time.Time  `json:"career_updated_at"`
}

func FromCareerModel(ev m.CareerModel) CareerResponse {
	return CareerResponse{
		CareerID:     ev.CareerID,
		TeacherID:    ev.CareerTeacherID,
		Kind:         string(ev.CareerKind),
		Title:        ev.CareerTitle,
		Organization: ev.CareerOrganization,
		Tier:         string(ev.CareerTier),
		StartDate:    ev.CareerStartDate,
		EndDate:      ev.CareerEndDate,
		CreatedAt:    ev.CareerCreatedAt,
		UpdatedAt:    ev.CareerUpdatedAt,
	}
}

func FromCareerModels(evs []m.CareerModel) []CareerResponse {
	out := make([]CareerResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromCareerModel(ev))
	}
	return out
}
