// file: internals/features/schoolday/model/schoolday_sync_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sync run states.
const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// Sync kinds.
const (
	SyncKindRoster      = "roster"
	SyncKindEvaluations = "evaluations"
)

// SchooldaySyncModel records one sync run against the Schoolday LMS so
// operators can see when data last arrived and why a run failed. Rows
// are append-only; there is no soft delete here.
type SchooldaySyncModel struct {
	SyncID   uuid.UUID `gorm:"column:sync_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sync_id"`
	SyncKind string    `gorm:"column:sync_kind;type:varchar(20);not null;index"              json:"sync_kind"`

	SyncStatus     string     `gorm:"column:sync_status;type:varchar(20);not null"              json:"sync_status"`
	SyncStartedAt  time.Time  `gorm:"column:sync_started_at;type:timestamptz;not null"          json:"sync_started_at"`
	SyncFinishedAt *time.Time `gorm:"column:sync_finished_at;type:timestamptz"                  json:"sync_finished_at,omitempty"`

	SyncRecordsSeen   int     `gorm:"column:sync_records_seen;not null;default:0"    json:"sync_records_seen"`
	SyncRecordsSynced int     `gorm:"column:sync_records_synced;not null;default:0"  json:"sync_records_synced"`
	SyncError         *string `gorm:"column:sync_error;type:text"                    json:"sync_error,omitempty"`

	// Raw upstream response snapshot, kept for debugging mismatches
	SyncPayload datatypes.JSON `gorm:"column:sync_payload;type:jsonb" json:"sync_payload,omitempty"`
}

func (SchooldaySyncModel) TableName() string { return "schoolday_syncs" }
