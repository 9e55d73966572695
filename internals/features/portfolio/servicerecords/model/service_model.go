// file: internals/features/portfolio/servicerecords/model/service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceKind string

const (
	ServiceKindCommittee ServiceKind = "committee"
	ServiceKindReview    ServiceKind = "review"
	ServiceKindCommunity ServiceKind = "community"
)

func (k ServiceKind) Valid() bool {
	switch k {
	case ServiceKindCommittee, ServiceKindReview, ServiceKindCommunity:
		return true
	}
	return false
}

type ServiceModel struct {
	ServiceID        uuid.UUID `gorm:"column:service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"service_id"`
	ServiceTeacherID uuid.UUID `gorm:"column:service_teacher_id;type:uuid;not null;index"               json:"service_teacher_id"`

	ServiceKind         ServiceKind `gorm:"column:service_kind;type:varchar(20);not null;index"   json:"service_kind"`
	ServiceOrganization string      `gorm:"column:service_organization;type:varchar(200);not null" json:"service_organization"`
	ServiceRole         string      `gorm:"column:service_role;type:varchar(120);not null"         json:"service_role"`
	ServiceStartDate    time.Time   `gorm:"column:service_start_date;type:date;not null"           json:"service_start_date"`

	// NULL end date means the contribution is ongoing
	ServiceEndDate *time.Time `gorm:"column:service_end_date;type:date" json:"service_end_date,omitempty"`

	// workload defaults to zero, never NULL, so sums stay safe
	ServiceHours float64 `gorm:"column:service_hours;not null;default:0" json:"service_hours"`

	ServiceCreatedAt time.Time      `gorm:"column:service_created_at;type:timestamptz;not null;default:now()" json:"service_created_at"`
	ServiceUpdatedAt time.Time      `gorm:"column:service_updated_at;type:timestamptz;not null;default:now()" json:"service_updated_at"`
	ServiceDeletedAt gorm.DeletedAt `gorm:"column:service_deleted_at;index"                                   json:"service_deleted_at,omitempty"`
}

func (ServiceModel) TableName() string { return "service_contributions" }
