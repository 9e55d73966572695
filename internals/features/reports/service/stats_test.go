// file: internals/features/reports/service/stats_test.go
package service

import (
	"math"
	"reflect"
	"testing"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
)

func fptr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeTeachingStatsEmpty(t *testing.T) {
	st := ComputeTeachingStats(nil, nil)
	if st.TotalCourses != 0 || st.TotalResponses != 0 {
		t.Fatalf("empty input: expected zero counts, got %+v", st)
	}
	for name, v := range map[string]float64{
		"AvgOverall":         st.AvgOverall,
		"WeightedAvgOverall": st.WeightedAvgOverall,
		"AvgTeachingQuality": st.AvgTeachingQuality,
		"AvgContent":         st.AvgContent,
		"AvgAvailability":    st.AvgAvailability,
	} {
		if v != 0 || math.IsNaN(v) {
			t.Errorf("empty input: %s = %v, want 0", name, v)
		}
	}
}

func TestComputeTeachingStats(t *testing.T) {
	courses := []courseModel.CourseModel{
		{CourseCode: "CS101"}, {CourseCode: "CS201"}, {CourseCode: "CS301"},
	}
	evals := []evaluationModel.EvaluationModel{
		{EvaluationOverall: 4.0, EvaluationTeachingQuality: 4.2, EvaluationContent: 3.8, EvaluationAvailability: 4.4, EvaluationResponseCount: 30},
		{EvaluationOverall: 3.0, EvaluationTeachingQuality: 3.4, EvaluationContent: 3.2, EvaluationAvailability: 3.6, EvaluationResponseCount: 10},
	}

	st := ComputeTeachingStats(courses, evals)
	if st.TotalCourses != 3 {
		t.Errorf("TotalCourses = %d, want 3", st.TotalCourses)
	}
	if st.TotalResponses != 40 {
		t.Errorf("TotalResponses = %d, want 40", st.TotalResponses)
	}
	// unweighted: (4.0 + 3.0) / 2
	if !almostEqual(st.AvgOverall, 3.5) {
		t.Errorf("AvgOverall = %v, want 3.5", st.AvgOverall)
	}
	// weighted: (4.0*30 + 3.0*10) / 40
	if !almostEqual(st.WeightedAvgOverall, 3.75) {
		t.Errorf("WeightedAvgOverall = %v, want 3.75", st.WeightedAvgOverall)
	}
}

func TestComputeResearchStats(t *testing.T) {
	outputs := []researchModel.ResearchModel{
		{ResearchKind: researchModel.ResearchKindPublication, ResearchImpactFactor: fptr(5.2), ResearchCitationCount: 12},
		{ResearchKind: researchModel.ResearchKindPublication, ResearchImpactFactor: fptr(4.8), ResearchCitationCount: 3},
		{ResearchKind: researchModel.ResearchKindGrant, ResearchFundingAmount: 250000},
	}

	st := ComputeResearchStats(outputs)
	if st.Publications != 2 {
		t.Errorf("Publications = %d, want 2", st.Publications)
	}
	if st.Grants != 1 {
		t.Errorf("Grants = %d, want 1", st.Grants)
	}
	if !almostEqual(st.TotalFunding, 250000) {
		t.Errorf("TotalFunding = %v, want 250000", st.TotalFunding)
	}
	if !almostEqual(st.AvgImpactFactor, 5.0) {
		t.Errorf("AvgImpactFactor = %v, want 5.0", st.AvgImpactFactor)
	}
	if st.TotalCitations != 15 {
		t.Errorf("TotalCitations = %d, want 15", st.TotalCitations)
	}

	// nil impact factors do not drag the mean down
	outputs = append(outputs, researchModel.ResearchModel{
		ResearchKind: researchModel.ResearchKindPublication,
	})
	st = ComputeResearchStats(outputs)
	if !almostEqual(st.AvgImpactFactor, 5.0) {
		t.Errorf("AvgImpactFactor with nil IF = %v, want 5.0", st.AvgImpactFactor)
	}
	if st.Publications != 3 {
		t.Errorf("Publications = %d, want 3", st.Publications)
	}
}

func TestComputeServiceStats(t *testing.T) {
	st := ComputeServiceStats(nil)
	if st.TotalContributions != 0 || st.TotalHours != 0 || st.AvgHoursPerService != 0 {
		t.Fatalf("empty input: expected zeroes, got %+v", st)
	}

	contributions := []serviceModel.ServiceModel{
		{ServiceKind: serviceModel.ServiceKindCommittee, ServiceHours: 20},
		{ServiceKind: serviceModel.ServiceKindReview, ServiceHours: 8},
		{ServiceKind: serviceModel.ServiceKindCommunity, ServiceHours: 14},
		{ServiceKind: serviceModel.ServiceKindCommittee, ServiceHours: 6},
	}
	st = ComputeServiceStats(contributions)
	if st.Committee != 2 || st.Review != 1 || st.Community != 1 {
		t.Errorf("kind counts = %d/%d/%d, want 2/1/1", st.Committee, st.Review, st.Community)
	}
	if !almostEqual(st.TotalHours, 48) {
		t.Errorf("TotalHours = %v, want 48", st.TotalHours)
	}
	if !almostEqual(st.AvgHoursPerService, 12) {
		t.Errorf("AvgHoursPerService = %v, want 12", st.AvgHoursPerService)
	}
}

func TestComputeProfessionalStats(t *testing.T) {
	records := []professionalModel.ProfessionalModel{
		{ProfessionalKind: professionalModel.ProfessionalKindCertification, ProfessionalDurationHours: 40},
		{ProfessionalKind: professionalModel.ProfessionalKindConference, ProfessionalDurationHours: 16},
	}
	st := ComputeProfessionalStats(records)
	if st.Certifications != 1 || st.Conferences != 1 || st.TotalActivities != 2 {
		t.Errorf("counts wrong: %+v", st)
	}
	if !almostEqual(st.AvgHoursPerActivity, 28) {
		t.Errorf("AvgHoursPerActivity = %v, want 28", st.AvgHoursPerActivity)
	}
}

func TestComputeCareerStats(t *testing.T) {
	events := []careerModel.CareerModel{
		{CareerKind: careerModel.CareerKindPosition, CareerTier: careerModel.CareerTierUniversity},
		{CareerKind: careerModel.CareerKindAward, CareerTier: careerModel.CareerTierNational},
		{CareerKind: careerModel.CareerKindAward, CareerTier: careerModel.CareerTierInternational},
		{CareerKind: careerModel.CareerKindRecognition, CareerTier: careerModel.CareerTierUniversity},
	}
	st := ComputeCareerStats(events)
	if st.Positions != 1 || st.Awards != 2 || st.Recognitions != 1 {
		t.Errorf("kind counts wrong: %+v", st)
	}
	if st.University != 2 || st.National != 1 || st.International != 1 {
		t.Errorf("tier counts wrong: %+v", st)
	}
	if st.TotalEvents != 4 {
		t.Errorf("TotalEvents = %d, want 4", st.TotalEvents)
	}
}

// folds are pure: same input, same output
func TestStatsIdempotent(t *testing.T) {
	outputs := []researchModel.ResearchModel{
		{ResearchKind: researchModel.ResearchKindPublication, ResearchImpactFactor: fptr(2.5), ResearchCitationCount: 7},
		{ResearchKind: researchModel.ResearchKindGrant, ResearchFundingAmount: 10000},
	}
	first := ComputeResearchStats(outputs)
	second := ComputeResearchStats(outputs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("stats not idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeStatsRespectsScope(t *testing.T) {
	b := &ReportBundle{Scope: ScopeResearch}
	st := computeStats(b)
	if st.Research == nil {
		t.Fatal("research scope: Research stats missing")
	}
	if st.Teaching != nil || st.Service != nil || st.Professional != nil || st.Career != nil {
		t.Fatalf("research scope: unexpected sections populated: %+v", st)
	}

	b.Scope = ScopePortfolio
	st = computeStats(b)
	if st.Teaching == nil || st.Research == nil || st.Service == nil || st.Professional == nil || st.Career == nil {
		t.Fatalf("portfolio scope: all sections should be populated: %+v", st)
	}
}
