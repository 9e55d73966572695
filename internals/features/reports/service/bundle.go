// file: internals/features/reports/service/bundle.go
package service

import (
	"time"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

// DateWindow is an optional closed interval applied to each collection's
// date column. A nil bound is unbounded on that side.
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

func (w DateWindow) IsZero() bool { return w.From == nil && w.To == nil }

// ReportBundle is the request-scoped aggregate for one export: one
// teacher, the collections the scope asked for, and the derived stats.
// It is built per request and discarded once the response is written,
// never persisted.
type ReportBundle struct {
	Scope       Scope
	Window      DateWindow
	GeneratedAt time.Time

	Teacher teacherModel.TeacherModel

	Courses      []courseModel.CourseModel
	Evaluations  []evaluationModel.EvaluationModel
	Research     []researchModel.ResearchModel
	Service      []serviceModel.ServiceModel
	Professional []professionalModel.ProfessionalModel
	Career       []careerModel.CareerModel

	Stats ScopeStats
}
