// file: internals/features/reports/service/stats.go
package service

import (
	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
)

// ScopeStats is the derived numeric summary for one bundle. Only the
// sections the scope covers are non-nil. Every fold below is a pure
// function of its input slice; empty input yields zeroes, never NaN.
type ScopeStats struct {
	Teaching     *TeachingStats     `json:"teaching,omitempty"`
	Research     *ResearchStats     `json:"research,omitempty"`
	Service      *ServiceStats      `json:"service,omitempty"`
	Professional *ProfessionalStats `json:"professional,omitempty"`
	Career       *CareerStats       `json:"career,omitempty"`
}

type TeachingStats struct {
	TotalCourses   int     `json:"total_courses"`
	TotalResponses int     `json:"total_responses"`
	// AvgOverall is the historical mean-of-per-term-means: each term
	// counts once regardless of how many students responded. Kept for
	// compatibility with previously issued reports.
	AvgOverall float64 `json:"avg_overall"`
	// WeightedAvgOverall weights each term by its response count; new
	// consumers should prefer this one.
	WeightedAvgOverall float64 `json:"weighted_avg_overall"`
	AvgTeachingQuality float64 `json:"avg_teaching_quality"`
	AvgContent         float64 `json:"avg_content"`
	AvgAvailability    float64 `json:"avg_availability"`
}

type ResearchStats struct {
	Publications    int     `json:"publications"`
	Grants          int     `json:"grants"`
	Patents         int     `json:"patents"`
	TotalFunding    float64 `json:"total_funding"`
	TotalCitations  int     `json:"total_citations"`
	AvgImpactFactor float64 `json:"avg_impact_factor"`
}

type ServiceStats struct {
	Committee          int     `json:"committee"`
	Review             int     `json:"review"`
	Community          int     `json:"community"`
	TotalContributions int     `json:"total_contributions"`
	TotalHours         float64 `json:"total_hours"`
	AvgHoursPerService float64 `json:"avg_hours_per_service"`
}

type ProfessionalStats struct {
	Certifications      int     `json:"certifications"`
	Trainings           int     `json:"trainings"`
	Conferences         int     `json:"conferences"`
	Education           int     `json:"education"`
	TotalActivities     int     `json:"total_activities"`
	TotalHours          float64 `json:"total_hours"`
	AvgHoursPerActivity float64 `json:"avg_hours_per_activity"`
}

type CareerStats struct {
	Positions     int `json:"positions"`
	Awards        int `json:"awards"`
	Recognitions  int `json:"recognitions"`
	University    int `json:"tier_university"`
	National      int `json:"tier_national"`
	International int `json:"tier_international"`
	TotalEvents   int `json:"total_events"`
}

func safeDiv(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func ComputeTeachingStats(courses []courseModel.CourseModel, evals []evaluationModel.EvaluationModel) TeachingStats {
	st := TeachingStats{TotalCourses: len(courses)}

	var sumOverall, sumQuality, sumContent, sumAvail float64
	var weightedSum float64
	for _, ev := range evals {
		sumOverall += ev.EvaluationOverall
		sumQuality += ev.EvaluationTeachingQuality
		sumContent += ev.EvaluationContent
		sumAvail += ev.EvaluationAvailability
		weightedSum += ev.EvaluationOverall * float64(ev.EvaluationResponseCount)
		st.TotalResponses += ev.EvaluationResponseCount
	}

	st.AvgOverall = safeDiv(sumOverall, len(evals))
	st.AvgTeachingQuality = safeDiv(sumQuality, len(evals))
	st.AvgContent = safeDiv(sumContent, len(evals))
	st.AvgAvailability = safeDiv(sumAvail, len(evals))
	if st.TotalResponses > 0 {
		st.WeightedAvgOverall = weightedSum / float64(st.TotalResponses)
	}
	return st
}

func ComputeResearchStats(outputs []researchModel.ResearchModel) ResearchStats {
	st := ResearchStats{}

	var impactSum float64
	var impactN int
	for _, r := range outputs {
		switch r.ResearchKind {
		case researchModel.ResearchKindPublication:
			st.Publications++
			st.TotalCitations += r.ResearchCitationCount
			if r.ResearchImpactFactor != nil {
				impactSum += *r.ResearchImpactFactor
				impactN++
			}
		case researchModel.ResearchKindGrant:
			st.Grants++
			st.TotalFunding += r.ResearchFundingAmount
		case researchModel.ResearchKindPatent:
			st.Patents++
		}
	}
	st.AvgImpactFactor = safeDiv(impactSum, impactN)
	return st
}

func ComputeServiceStats(contributions []serviceModel.ServiceModel) ServiceStats {
	st := ServiceStats{TotalContributions: len(contributions)}

	for _, s := range contributions {
		switch s.ServiceKind {
		case serviceModel.ServiceKindCommittee:
			st.Committee++
		case serviceModel.ServiceKindReview:
			st.Review++
		case serviceModel.ServiceKindCommunity:
			st.Community++
		}
		st.TotalHours += s.ServiceHours
	}
	st.AvgHoursPerService = safeDiv(st.TotalHours, st.TotalContributions)
	return st
}

func ComputeProfessionalStats(records []professionalModel.ProfessionalModel) ProfessionalStats {
	st := ProfessionalStats{TotalActivities: len(records)}

	for _, p := range records {
		switch p.ProfessionalKind {
		case professionalModel.ProfessionalKindCertification:
			st.Certifications++
		case professionalModel.ProfessionalKindTraining:
			st.Trainings++
		case professionalModel.ProfessionalKindConference:
			st.Conferences++
		case professionalModel.ProfessionalKindEducation:
			st.Education++
		}
		st.TotalHours += p.ProfessionalDurationHours
	}
	st.AvgHoursPerActivity = safeDiv(st.TotalHours, st.TotalActivities)
	return st
}

func ComputeCareerStats(events []careerModel.CareerModel) CareerStats {
	st := CareerStats{TotalEvents: len(events)}

	for _, ev := range events {
		switch ev.CareerKind {
		case careerModel.CareerKindPosition:
			st.Positions++
		case careerModel.CareerKindAward:
			st.Awards++
		case careerModel.CareerKindRecognition:
			st.Recognitions++
		}
		switch ev.CareerTier {
		case careerModel.CareerTierUniversity:
			st.University++
		case careerModel.CareerTierNational:
			st.National++
		case careerModel.CareerTierInternational:
			st.International++
		}
	}
	return st
}

// computeStats fills only the sections the scope covers.
func computeStats(b *ReportBundle) ScopeStats {
	var st ScopeStats
	if b.Scope.includesTeaching() {
		s := ComputeTeachingStats(b.Courses, b.Evaluations)
		st.Teaching = &s
	}
	if b.Scope.includesResearch() {
		s := ComputeResearchStats(b.Research)
		st.Research = &s
	}
	if b.Scope.includesService() {
		s := ComputeServiceStats(b.Service)
		st.Service = &s
	}
	if b.Scope.includesProfessional() {
		s := ComputeProfessionalStats(b.Professional)
		st.Professional = &s
	}
	if b.Scope.includesCareer() {
		s := ComputeCareerStats(b.Career)
		st.Career = &s
	}
	return st
}
