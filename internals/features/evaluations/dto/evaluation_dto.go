// file: internals/features/evaluations/dto/evaluation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "teachereval_backend/internals/features/evaluations/model"
)

// Scores arrive pre-aggregated per term; each sub-score must already sit
// inside [1,5] — out-of-range input is rejected, not clamped silently.
type CreateEvaluationRequest struct {
	TeacherID       uuid.UUID      `json:"evaluation_teacher_id"       form:"evaluation_teacher_id"       validate:"required"`
	Semester        string         `json:"evaluation_semester"         form:"evaluation_semester"         validate:"required,oneof=spring summer fall winter"`
	Year            int            `json:"evaluation_year"             form:"evaluation_year"             validate:"required,min=1900,max=2200"`
	Overall         float64        `json:"evaluation_overall"          form:"evaluation_overall"          validate:"required,gte=1,lte=5"`
	TeachingQuality float64        `json:"evaluation_teaching_quality" form:"evaluation_teaching_quality" validate:"required,gte=1,lte=5"`
	Content         float64        `json:"evaluation_content"          form:"evaluation_content"          validate:"required,gte=1,lte=5"`
	Availability    float64        `json:"evaluation_availability"     form:"evaluation_availability"     validate:"required,gte=1,lte=5"`
	ResponseCount   int            `json:"evaluation_response_count"   form:"evaluation_response_count"   validate:"min=0"`
	Breakdown       datatypes.JSON `json:"evaluation_breakdown"        form:"evaluation_breakdown"`
}

func (r *CreateEvaluationRequest) Normalize() {
	r.Semester = strings.ToLower(strings.TrimSpace(r.Semester))
}

func (r *CreateEvaluationRequest) ToModel() m.EvaluationModel {
	return m.EvaluationModel{
		EvaluationTeacherID:       r.TeacherID,
		EvaluationSemester:        r.Semester,
		EvaluationYear:            r.Year,
		EvaluationOverall:         r.Overall,
		EvaluationTeachingQuality: r.TeachingQuality,
		EvaluationContent:         r.Content,
		EvaluationAvailability:    r.Availability,
		EvaluationResponseCount:   r.ResponseCount,
		EvaluationBreakdown:       r.Breakdown,
	}
}

type UpdateEvaluationRequest struct {
	Overall         *float64        `json:"evaluation_overall"          form:"evaluation_overall"          validate:"omitempty,gte=1,lte=5"`
	TeachingQuality *float64        `json:"evaluation_teaching_quality" form:"evaluation_teaching_quality" validate:"omitempty,gte=1,lte=5"`
	Content         *float64        `json:"evaluation_content"          form:"evaluation_content"          validate:"omitempty,gte=1,lte=5"`
	Availability    *float64        `json:"evaluation_availability"     form:"evaluation_availability"     validate:"omitempty,gte=1,lte=5"`
	ResponseCount   *int            `json:"evaluation_response_count"   form:"evaluation_response_count"   validate:"omitempty,min=0"`
	Breakdown       *datatypes.JSON `json:"evaluation_breakdown"        form:"evaluation_breakdown"`
}

func (r *UpdateEvaluationRequest) Apply(ev *m.EvaluationModel) {
	if r.Overall != nil {
		ev.EvaluationOverall = *r.Overall
	}
	if r.TeachingQuality != nil {
		ev.EvaluationTeachingQuality = *r.TeachingQuality
	}
	if r.Content != nil {
		ev.EvaluationContent = *r.Content
	}
	if r.Availability != nil {
		ev.EvaluationAvailability = *r.Availability
	}
	if r.ResponseCount != nil {
		ev.EvaluationResponseCount = *r.ResponseCount
	}
	if r.Breakdown != nil {
		ev.EvaluationBreakdown = *r.Breakdown
	}
}

type EvaluationResponse struct {
	EvaluationID    uuid.UUID      `json:"evaluation_id"`
	TeacherID       uuid.UUID      `json:"evaluation_teacher_id"`
	Semester        string         `json:"evaluation_semester"`
	Year            int            `json:"evaluation_year"`
	Overall         float64        `json:"evaluation_overall"`
	TeachingQuality float64        `json:"evaluation_teaching_quality"`
	Content         float64        `json:"evaluation_content"`
	Availability    float64        `json:"evaluation_availability"`
	ResponseCount   int            `json:"evaluation_response_count"`
	Breakdown       datatypes.JSON `json:"evaluation_breakdown,omitempty"`
	CreatedAt       time.Time      `json:"evaluation_created_at"`
	UpdatedAt       time.Time      `json:"evaluation_updated_at"`
}

func FromEvaluationModel(ev m.EvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID:    ev.EvaluationID,
		TeacherID:       ev.EvaluationTeacherID,
		Semester:        ev.EvaluationSemester,
		Year:            ev.EvaluationYear,
		Overall:         ev.EvaluationOverall,
		TeachingQuality: ev.EvaluationTeachingQuality,
		Content:         ev.EvaluationContent,
		Availability:    ev.EvaluationAvailability,
		ResponseCount:   ev.EvaluationResponseCount,
		Breakdown:       ev.EvaluationBreakdown,
		CreatedAt:       ev.EvaluationCreatedAt,
		UpdatedAt:       ev.EvaluationUpdatedAt,
	}
}

func FromEvaluationModels(evs []m.EvaluationModel) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromEvaluationModel(ev))
	}
	return out
}
