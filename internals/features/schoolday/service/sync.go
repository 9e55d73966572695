// file: internals/features/schoolday/service/sync.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	syncModel "teachereval_backend/internals/features/schoolday/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

/* =========================================================
   Syncer - pulls Schoolday data into local tables
   ========================================================= */

// Syncer reconciles the local teacher and evaluation tables against the
// Schoolday LMS. Teachers match on email, evaluations on (teacher,
// semester, year). Every run leaves a row in schoolday_syncs.
type Syncer struct {
	DB     *gorm.DB
	Client *Client
}

func NewSyncer(db *gorm.DB) *Syncer {
	return &Syncer{DB: db, Client: NewClient()}
}

func (s *Syncer) startRun(kind string) *syncModel.SchooldaySyncModel {
	run := &syncModel.SchooldaySyncModel{
		SyncKind:      kind,
		SyncStatus:    syncModel.SyncStatusRunning,
		SyncStartedAt: time.Now().UTC(),
	}
	if err := s.DB.Create(run).Error; err != nil {
		log.Printf("❌ Schoolday: could not record %s sync run: %v", kind, err)
	}
	return run
}

func (s *Syncer) finishRun(run *syncModel.SchooldaySyncModel, seen, synced int, payload any, runErr error) {
	now := time.Now().UTC()
	run.SyncFinishedAt = &now
	run.SyncRecordsSeen = seen
	run.SyncRecordsSynced = synced
	if runErr != nil {
		msg := runErr.Error()
		run.SyncStatus = syncModel.SyncStatusFailed
		run.SyncError = &msg
	} else {
		run.SyncStatus = syncModel.SyncStatusSuccess
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			run.SyncPayload = datatypes.JSON(raw)
		}
	}
	if err := s.DB.Save(run).Error; err != nil {
		log.Printf("❌ Schoolday: could not finish %s sync run: %v", run.SyncKind, err)
	}
}

// SyncRoster upserts the teacher roster by email. Teachers missing from
// the roster are only deactivated, never deleted.
func (s *Syncer) SyncRoster(ctx context.Context) error {
	run := s.startRun(syncModel.SyncKindRoster)

	entries, err := s.Client.FetchRoster(ctx)
	if err != nil {
		s.finishRun(run, 0, 0, nil, err)
		return err
	}

	synced := 0
	seenEmails := make([]string, 0, len(entries))
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			email := strings.ToLower(strings.TrimSpace(e.Email))
			if email == "" || e.FullName == "" {
				continue
			}
			hireDate, perr := time.Parse("2006-01-02", e.HireDate)
			if perr != nil {
				log.Printf("⚠️ Schoolday: skipping %s: bad hire_date %q", email, e.HireDate)
				continue
			}
			seenEmails = append(seenEmails, email)

			row := teacherModel.TeacherModel{
				TeacherFullName:   strings.TrimSpace(e.FullName),
				TeacherEmail:      email,
				TeacherDepartment: strings.TrimSpace(e.Department),
				TeacherPosition:   strings.TrimSpace(e.Position),
				TeacherHireDate:   hireDate,
				TeacherIsActive:   e.Active,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "teacher_email"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"teacher_full_name", "teacher_department", "teacher_position",
					"teacher_hire_date", "teacher_is_active", "teacher_updated_at",
				}),
			}).Create(&row)
			if res.Error != nil {
				return fmt.Errorf("upsert %s: %w", email, res.Error)
			}
			synced++
		}

		if len(seenEmails) > 0 {
			if err := tx.Model(&teacherModel.TeacherModel{}).
				Where("teacher_email NOT IN ?", seenEmails).
				Where("teacher_is_active = ?", true).
				Update("teacher_is_active", false).Error; err != nil {
				return fmt.Errorf("deactivate missing teachers: %w", err)
			}
		}
		return nil
	})

	s.finishRun(run, len(entries), synced, nil, err)
	if err != nil {
		return err
	}
	log.Printf("✅ Schoolday: roster sync done (%d/%d upserted)", synced, len(entries))
	return nil
}

// SyncEvaluations upserts per-term evaluation aggregates, resolving
// teachers by email. Entries for unknown teachers are skipped.
func (s *Syncer) SyncEvaluations(ctx context.Context, year int) error {
	run := s.startRun(syncModel.SyncKindEvaluations)

	entries, err := s.Client.FetchEvaluations(ctx, year)
	if err != nil {
		s.finishRun(run, 0, 0, nil, err)
		return err
	}

	synced := 0
	skipped := 0
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			email := strings.ToLower(strings.TrimSpace(e.TeacherEmail))
			var teacher teacherModel.TeacherModel
			if ferr := tx.Where("teacher_email = ?", email).First(&teacher).Error; ferr != nil {
				skipped++
				continue
			}

			row := evaluationModel.EvaluationModel{
				EvaluationTeacherID:       teacher.TeacherID,
				EvaluationSemester:        strings.ToLower(strings.TrimSpace(e.Semester)),
				EvaluationYear:            e.Year,
				EvaluationOverall:         e.Overall,
				EvaluationTeachingQuality: e.TeachingQuality,
				EvaluationContent:         e.Content,
				EvaluationAvailability:    e.Availability,
				EvaluationResponseCount:   e.ResponseCount,
			}
			if len(e.Breakdown) > 0 {
				row.EvaluationBreakdown = datatypes.JSON(e.Breakdown)
			}
			res := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "evaluation_teacher_id"}, {Name: "evaluation_semester"}, {Name: "evaluation_year"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"evaluation_overall", "evaluation_teaching_quality", "evaluation_content",
					"evaluation_availability", "evaluation_response_count", "evaluation_breakdown",
					"evaluation_updated_at",
				}),
			}).Create(&row)
			if res.Error != nil {
				return fmt.Errorf("upsert evaluation %s %s/%d: %w", email, row.EvaluationSemester, row.EvaluationYear, res.Error)
			}
			synced++
		}
		return nil
	})

	s.finishRun(run, len(entries), synced, map[string]int{"skipped_unknown_teacher": skipped}, err)
	if err != nil {
		return err
	}
	log.Printf("✅ Schoolday: evaluation sync done (%d/%d upserted, %d skipped)", synced, len(entries), skipped)
	return nil
}

// SyncAll runs roster then evaluations, in that order so new teachers
// exist before their evaluations arrive.
func (s *Syncer) SyncAll(ctx context.Context) error {
	if err := s.SyncRoster(ctx); err != nil {
		return err
	}
	return s.SyncEvaluations(ctx, 0)
}
