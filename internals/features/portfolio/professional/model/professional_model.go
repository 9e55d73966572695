// file: internals/features/portfolio/professional/model/professional_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalKind string

const (
	ProfessionalKindCertification ProfessionalKind = "certification"
	ProfessionalKindTraining      ProfessionalKind = "training"
	ProfessionalKindConference    ProfessionalKind = "conference"
	ProfessionalKindEducation     ProfessionalKind = "education"
)

func (k ProfessionalKind) Valid() bool {
	switch k {
	case ProfessionalKindCertification, ProfessionalKindTraining,
		ProfessionalKindConference, ProfessionalKindEducation:
		return true
	}
	return false
}

type ProfessionalModel struct {
	ProfessionalID        uuid.UUID `gorm:"column:professional_id;type:uuid;default:gen_random_uuid();primaryKey" json:"professional_id"`
	ProfessionalTeacherID uuid.UUID `gorm:"column:professional_teacher_id;type:uuid;not null;index"               json:"professional_teacher_id"`

	ProfessionalKind           ProfessionalKind `gorm:"column:professional_kind;type:varchar(20);not null;index"      json:"professional_kind"`
	ProfessionalTitle          string           `gorm:"column:professional_title;type:varchar(200);not null"          json:"professional_title"`
	ProfessionalInstitution    string           `gorm:"column:professional_institution;type:varchar(200);not null"    json:"professional_institution"`
	ProfessionalCompletionDate time.Time        `gorm:"column:professional_completion_date;type:date;not null"        json:"professional_completion_date"`

	// duration defaults to zero, never NULL, so sums stay safe
	ProfessionalDurationHours float64 `gorm:"column:professional_duration_hours;not null;default:0" json:"professional_duration_hours"`

	ProfessionalCertificateRef *string `gorm:"column:professional_certificate_ref;type:varchar(300)" json:"professional_certificate_ref,omitempty"`

	ProfessionalCreatedAt time.Time      `gorm:"column:professional_created_at;type:timestamptz;not null;default:now()" json:"professional_created_at"`
	ProfessionalUpdatedAt time.Time      `gorm:"column:professional_updated_at;type:timestamptz;not null;default:now()" json:"professional_updated_at"`
	ProfessionalDeletedAt gorm.DeletedAt `gorm:"column:professional_deleted_at;index"                                   json:"professional_deleted_at,omitempty"`
}

func (ProfessionalModel) TableName() string { return "professional_development" }
