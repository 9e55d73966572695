// file: internals/features/evaluations/model/evaluation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvaluationModel is the per-term aggregate of student ratings for one
// teacher. Individual submissions are rolled up by (teacher, semester,
// year) before they reach this table; the report pipeline only ever sees
// these averages and counts.
type EvaluationModel struct {
	// PK & owner
	EvaluationID        uuid.UUID `gorm:"column:evaluation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"evaluation_id"`
	EvaluationTeacherID uuid.UUID `gorm:"column:evaluation_teacher_id;type:uuid;not null;index;uniqueIndex:uq_evaluations_term" json:"evaluation_teacher_id"`

	// Term
	EvaluationSemester string `gorm:"column:evaluation_semester;type:varchar(20);not null;uniqueIndex:uq_evaluations_term" json:"evaluation_semester"`
	EvaluationYear     int    `gorm:"column:evaluation_year;not null;uniqueIndex:uq_evaluations_term"                      json:"evaluation_year"`

	// Sub-scores, each 1.0..5.0 (also enforced by DB check constraints)
	EvaluationOverall         float64 `gorm:"column:evaluation_overall;not null;check:evaluation_overall >= 1 AND evaluation_overall <= 5"                          json:"evaluation_overall"`
	EvaluationTeachingQuality float64 `gorm:"column:evaluation_teaching_quality;not null;check:evaluation_teaching_quality >= 1 AND evaluation_teaching_quality <= 5" json:"evaluation_teaching_quality"`
	EvaluationContent         float64 `gorm:"column:evaluation_content;not null;check:evaluation_content >= 1 AND evaluation_content <= 5"                          json:"evaluation_content"`
	EvaluationAvailability    float64 `gorm:"column:evaluation_availability;not null;check:evaluation_availability >= 1 AND evaluation_availability <= 5"           json:"evaluation_availability"`

	EvaluationResponseCount int `gorm:"column:evaluation_response_count;not null;default:0" json:"evaluation_response_count"`

	// Optional per-question distribution, kept as-is from ingestion
	EvaluationBreakdown datatypes.JSON `gorm:"column:evaluation_breakdown;type:jsonb" json:"evaluation_breakdown,omitempty"`

	// Audit
	EvaluationCreatedAt time.Time      `gorm:"column:evaluation_created_at;type:timestamptz;not null;default:now()" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time      `gorm:"column:evaluation_updated_at;type:timestamptz;not null;default:now()" json:"evaluation_updated_at"`
	EvaluationDeletedAt gorm.DeletedAt `gorm:"column:evaluation_deleted_at;index"                                   json:"evaluation_deleted_at,omitempty"`
}

func (EvaluationModel) TableName() string { return "evaluations" }
