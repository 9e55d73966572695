// file: internals/features/portfolio/career/model/career_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerKind string

const (
	CareerKindPosition    CareerKind = "position"
	CareerKindAward       CareerKind = "award"
	CareerKindRecognition CareerKind = "recognition"
)

func (k CareerKind) Valid() bool {
	switch k {
	case CareerKindPosition, CareerKindAward, CareerKindRecognition:
		return true
	}
	return false
}

// CareerTier is the achievement level of an event.
type CareerTier string

const (
	CareerTierUniversity    CareerTier = "university"
	CareerTierNational      CareerTier = "national"
	CareerTierInternational CareerTier = "international"
)

func (t CareerTier) Valid() bool {
	switch t {
	case CareerTierUniversity, CareerTierNational, CareerTierInternational:
		return true
	}
	return false
}

type CareerModel struct {
	CareerID        uuid.UUID `gorm:"column:career_id;type:uuid;default:gen_random_uuid();primaryKey" json:"career_id"`
	CareerTeacherID uuid.UUID `gorm:"column:career_teacher_id;type:uuid;not null;index"               json:"career_teacher_id"`

	CareerKind         CareerKind `gorm:"column:career_kind;type:varchar(20);not null;index"      json:"career_kind"`
	CareerTitle        string     `gorm:"column:career_title;type:varchar(200);not null"          json:"career_title"`
	CareerOrganization string     `gorm:"column:career_organization;type:varchar(200);not null"   json:"career_organization"`
	CareerTier         CareerTier `gorm:"column:career_tier;type:varchar(20);not null"            json:"career_tier"`
	CareerStartDate    time.Time  `gorm:"column:career_start_date;type:date;not null"             json:"career_start_date"`
	CareerEndDate      *time.Time `gorm:"column:career_end_date;type:date"                        json:"career_end_date,omitempty"`

	CareerCreatedAt time.Time      `gorm:"column:career_created_at;type:timestamptz;not null;default:now()" json:"career_created_at"`
	CareerUpdatedAt time.Time      `gorm:"column:career_updated_at;type:timestamptz;not null;default:now()" json:"career_updated_at"`
	CareerDeletedAt gorm.DeletedAt `gorm:"column:career_deleted_at;index"                                   json:"career_deleted_at,omitempty"`
}

func (CareerModel) TableName() string { return "career_events" }
