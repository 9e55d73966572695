// file: internals/features/reports/service/aggregator_test.go
package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

// fakeSource serves canned collections and counts calls, so tests can
// assert which fetches a scope triggers without a database.
type fakeSource struct {
	teacher      teacherModel.TeacherModel
	teacherErr   error
	courses      []courseModel.CourseModel
	evaluations  []evaluationModel.EvaluationModel
	research     []researchModel.ResearchModel
	service      []serviceModel.ServiceModel
	professional []professionalModel.ProfessionalModel
	career       []careerModel.CareerModel

	researchErr error

	calls struct {
		courses, evaluations, research, service, professional, career int32
	}
}

func (f *fakeSource) Teacher(ctx context.Context, id uuid.UUID) (teacherModel.TeacherModel, error) {
	if f.teacherErr != nil {
		return teacherModel.TeacherModel{}, f.teacherErr
	}
	return f.teacher, nil
}

func (f *fakeSource) Courses(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]courseModel.CourseModel, error) {
	atomic.AddInt32(&f.calls.courses, 1)
	return f.courses, nil
}

func (f *fakeSource) Evaluations(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]evaluationModel.EvaluationModel, error) {
	atomic.AddInt32(&f.calls.evaluations, 1)
	return f.evaluations, nil
}

func (f *fakeSource) Research(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]researchModel.ResearchModel, error) {
	atomic.AddInt32(&f.calls.research, 1)
	if f.researchErr != nil {
		return nil, f.researchErr
	}
	return f.research, nil
}

func (f *fakeSource) Service(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]serviceModel.ServiceModel, error) {
	atomic.AddInt32(&f.calls.service, 1)
	return f.service, nil
}

func (f *fakeSource) Professional(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]professionalModel.ProfessionalModel, error) {
	atomic.AddInt32(&f.calls.professional, 1)
	return f.professional, nil
}

func (f *fakeSource) Career(ctx context.Context, teacherID uuid.UUID, w DateWindow) ([]careerModel.CareerModel, error) {
	atomic.AddInt32(&f.calls.career, 1)
	return f.career, nil
}

func TestAggregatorTeacherNotFound(t *testing.T) {
	src := &fakeSource{teacherErr: ErrTeacherNotFound}
	agg := NewAggregator(src)

	_, err := agg.Build(context.Background(), uuid.New(), ScopePortfolio, DateWindow{})
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
	// the bad id fails before any collection fetch
	if src.calls.courses+src.calls.research+src.calls.career != 0 {
		t.Fatal("collections were fetched for a nonexistent teacher")
	}
}

func TestAggregatorScopeFetchMatrix(t *testing.T) {
	cases := []struct {
		scope       Scope
		wantCourses int32
		wantRes     int32
		wantCareer  int32
	}{
		{ScopeTeaching, 1, 0, 0},
		{ScopeResearch, 0, 1, 0},
		{ScopeCareer, 0, 0, 1},
		{ScopeOverview, 1, 1, 1},
		{ScopePortfolio, 1, 1, 1},
	}
	for _, tc := range cases {
		src := &fakeSource{teacher: teacherModel.TeacherModel{TeacherFullName: "T"}}
		agg := NewAggregator(src)
		if _, err := agg.Build(context.Background(), uuid.New(), tc.scope, DateWindow{}); err != nil {
			t.Fatalf("%s: %v", tc.scope, err)
		}
		if src.calls.courses != tc.wantCourses {
			t.Errorf("%s: courses fetched %d times, want %d", tc.scope, src.calls.courses, tc.wantCourses)
		}
		if src.calls.research != tc.wantRes {
			t.Errorf("%s: research fetched %d times, want %d", tc.scope, src.calls.research, tc.wantRes)
		}
		if src.calls.career != tc.wantCareer {
			t.Errorf("%s: career fetched %d times, want %d", tc.scope, src.calls.career, tc.wantCareer)
		}
	}
}

func TestAggregatorBundleAndStats(t *testing.T) {
	src := &fakeSource{
		teacher: teacherModel.TeacherModel{TeacherFullName: "Maria Santos"},
		research: []researchModel.ResearchModel{
			{ResearchKind: researchModel.ResearchKindGrant, ResearchFundingAmount: 50000},
			{ResearchKind: researchModel.ResearchKindPublication, ResearchImpactFactor: fptr(2.0)},
		},
	}
	agg := NewAggregator(src)

	b, err := agg.Build(context.Background(), uuid.New(), ScopeResearch, DateWindow{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Teacher.TeacherFullName != "Maria Santos" {
		t.Errorf("teacher = %q", b.Teacher.TeacherFullName)
	}
	if len(b.Research) != 2 {
		t.Fatalf("research rows = %d, want 2", len(b.Research))
	}
	if b.Stats.Research == nil {
		t.Fatal("research stats missing")
	}
	if b.Stats.Research.Grants != 1 || !almostEqual(b.Stats.Research.TotalFunding, 50000) {
		t.Errorf("stats wrong: %+v", b.Stats.Research)
	}
	if b.Stats.Teaching != nil {
		t.Error("teaching stats present for research scope")
	}
	if b.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestAggregatorWrapsSourceErrors(t *testing.T) {
	src := &fakeSource{
		teacher:     teacherModel.TeacherModel{TeacherFullName: "T"},
		researchErr: errors.New("connection reset"),
	}
	agg := NewAggregator(src)

	_, err := agg.Build(context.Background(), uuid.New(), ScopeResearch, DateWindow{})
	if !errors.Is(err, ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
}
