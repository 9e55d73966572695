// file: internals/features/reports/service/source.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

// Source is the read interface the aggregator runs against. It performs
// no writes; the gorm implementation below is the production one, tests
// substitute an in-memory fake.
type Source interface {
	Teacher(ctx context.Context, id uuid.UUID) (teacherModel.TeacherModel, error)
	Courses(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]courseModel.CourseModel, error)
	Evaluations(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]evaluationModel.EvaluationModel, error)
	Research(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]researchModel.ResearchModel, error)
	Service(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]serviceModel.ServiceModel, error)
	Professional(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]professionalModel.ProfessionalModel, error)
	Career(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]careerModel.CareerModel, error)
}

type gormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) Source { return &gormSource{db: db} }

func (s *gormSource) Teacher(ctx context.Context, id uuid.UUID) (teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	err := s.db.WithContext(ctx).Where("teacher_id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return t, ErrTeacherNotFound
	}
	return t, err
}

// windowed applies the optional date interval on the given column.
func windowed(q *gorm.DB, column string, w DateWindow) *gorm.DB {
	if w.From != nil {
		q = q.Where(column+" >= ?", *w.From)
	}
	if w.To != nil {
		q = q.Where(column+" <= ?", *w.To)
	}
	return q
}

func (s *gormSource) Courses(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]courseModel.CourseModel, error) {
	var rows []courseModel.CourseModel
	q := s.db.WithContext(ctx).Where("course_teacher_id = ?", teacherID)
	// courses have no single date column; the window restricts by year
	if w.From != nil {
		q = q.Where("course_year >= ?", w.From.Year())
	}
	if w.To != nil {
		q = q.Where("course_year <= ?", w.To.Year())
	}
	err := q.Order("course_year DESC, course_semester ASC, course_code ASC").Find(&rows).Error
	return rows, err
}

func (s *gormSource) Evaluations(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]evaluationModel.EvaluationModel, error) {
	var rows []evaluationModel.EvaluationModel
	q := s.db.WithContext(ctx).Where("evaluation_teacher_id = ?", teacherID)
	if w.From != nil {
		q = q.Where("evaluation_year >= ?", w.From.Year())
	}
	if w.To != nil {
		q = q.Where("evaluation_year <= ?", w.To.Year())
	}
	err := q.Order("evaluation_year DESC, evaluation_semester ASC").Find(&rows).Error
	return rows, err
}

func (s *gormSource) Research(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]researchModel.ResearchModel, error) {
	var rows []researchModel.ResearchModel
	q := windowed(s.db.WithContext(ctx).Where("research_teacher_id = ?", teacherID), "research_date", w)
	err := q.Order("research_date DESC").Find(&rows).Error
	return rows, err
}

func (s *gormSource) Service(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]serviceModel.ServiceModel, error) {
	var rows []serviceModel.ServiceModel
	q := windowed(s.db.WithContext(ctx).Where("service_teacher_id = ?", teacherID), "service_start_date", w)
	err := q.Order("service_start_date DESC").Find(&rows).Error
	return rows, err
}

func (s *gormSource) Professional(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]professionalModel.ProfessionalModel, error) {
	var rows []professionalModel.ProfessionalModel
	q := windowed(s.db.WithContext(ctx).Where("professional_teacher_id = ?", teacherID), "professional_completion_date", w)
	err := q.Order("professional_completion_date DESC").Find(&rows).Error
	return rows, err
}

func (s *gormSource) Career(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]careerModel.CareerModel, error) {
	var rows []careerModel.CareerModel
	q := windowed(s.db.WithContext(ctx).Where("career_teacher_id = ?", teacherID), "career_start_date", w)
	err := q.Order("career_start_date DESC").Find(&rows).Error
	return rows, err
}
