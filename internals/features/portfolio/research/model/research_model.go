// file: internals/features/portfolio/research/model/research_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ResearchKind is a closed set; anything outside it is rejected at the
// edge so downstream switches can stay exhaustive.
type ResearchKind string

const (
	ResearchKindPublication ResearchKind = "publication"
	ResearchKindGrant       ResearchKind = "grant"
	ResearchKindPatent      ResearchKind = "patent"
)

func (k ResearchKind) Valid() bool {
	switch k {
	case ResearchKindPublication, ResearchKindGrant, ResearchKindPatent:
		return true
	}
	return false
}

type ResearchModel struct {
	// PK & owner
	ResearchID        uuid.UUID `gorm:"column:research_id;type:uuid;default:gen_random_uuid();primaryKey" json:"research_id"`
	ResearchTeacherID uuid.UUID `gorm:"column:research_teacher_id;type:uuid;not null;index"               json:"research_teacher_id"`

	// Shared fields
	ResearchKind   ResearchKind `gorm:"column:research_kind;type:varchar(20);not null;index"  json:"research_kind"`
	ResearchTitle  string       `gorm:"column:research_title;type:varchar(300);not null"      json:"research_title"`
	ResearchDate   time.Time    `gorm:"column:research_date;type:date;not null"               json:"research_date"`
	ResearchStatus string       `gorm:"column:research_status;type:varchar(40);not null"      json:"research_status"`

	// Publication-only
	ResearchVenue         *string        `gorm:"column:research_venue;type:varchar(200)"        json:"research_venue,omitempty"`
	ResearchImpactFactor  *float64       `gorm:"column:research_impact_factor"                  json:"research_impact_factor,omitempty"`
	ResearchCitationCount int            `gorm:"column:research_citation_count;not null;default:0" json:"research_citation_count"`
	ResearchAuthors       pq.StringArray `gorm:"column:research_authors;type:text[]"            json:"research_authors,omitempty"`

	// Grant-only; funding defaults to zero, never NULL, so sums stay safe
	ResearchFundingAmount float64 `gorm:"column:research_funding_amount;not null;default:0" json:"research_funding_amount"`
	ResearchFundingAgency *string `gorm:"column:research_funding_agency;type:varchar(200)"  json:"research_funding_agency,omitempty"`

	// Audit
	ResearchCreatedAt time.Time      `gorm:"column:research_created_at;type:timestamptz;not null;default:now()" json:"research_created_at"`
	ResearchUpdatedAt time.Time      `gorm:"column:research_updated_at;type:timestamptz;not null;default:now()" json:"research_updated_at"`
	ResearchDeletedAt gorm.DeletedAt `gorm:"column:research_deleted_at;index"                                   json:"research_deleted_at,omitempty"`
}

func (ResearchModel) TableName() string { return "research_outputs" }
