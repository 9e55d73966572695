// file: internals/features/reports/service/document_test.go
package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

func testBundle(scope Scope) *ReportBundle {
	b := &ReportBundle{
		Scope:       scope,
		GeneratedAt: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		Teacher: teacherModel.TeacherModel{
			TeacherFullName:   "Maria Santos",
			TeacherDepartment: "Computer Science",
			TeacherPosition:   "Associate Professor",
			TeacherHireDate:   time.Date(2015, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	b.Stats = computeStats(b)
	return b
}

func sectionByHeading(doc Document, heading string) *Section {
	for i := range doc.Sections {
		if doc.Sections[i].Heading == heading {
			return &doc.Sections[i]
		}
	}
	return nil
}

func TestBuildDocumentCapsRecords(t *testing.T) {
	b := testBundle(ScopeTeaching)
	for i := 0; i < 25; i++ {
		b.Courses = append(b.Courses, courseModel.CourseModel{
			CourseCode: fmt.Sprintf("CS%03d", i), CourseName: "Course", CourseSemester: "fall", CourseYear: 2025,
		})
	}
	b.Stats = computeStats(b)

	doc := BuildDocument(b, false)
	sec := sectionByHeading(doc, "Teaching")
	if sec == nil || sec.Table == nil {
		t.Fatal("teaching section missing")
	}
	if sec.Table.Total != 25 {
		t.Errorf("Total = %d, want 25", sec.Table.Total)
	}
	if sec.Table.Shown != recordDisplayCap {
		t.Errorf("Shown = %d, want %d", sec.Table.Shown, recordDisplayCap)
	}
	if len(sec.Table.Rows) != recordDisplayCap {
		t.Errorf("len(Rows) = %d, want %d", len(sec.Table.Rows), recordDisplayCap)
	}
}

func TestBuildDocumentSmallCollectionNotCapped(t *testing.T) {
	b := testBundle(ScopeTeaching)
	for i := 0; i < 3; i++ {
		b.Courses = append(b.Courses, courseModel.CourseModel{
			CourseCode: fmt.Sprintf("CS%d", i), CourseName: "Course", CourseSemester: "spring", CourseYear: 2026,
		})
	}
	b.Stats = computeStats(b)

	doc := BuildDocument(b, false)
	sec := sectionByHeading(doc, "Teaching")
	if sec == nil || sec.Table == nil {
		t.Fatal("teaching section missing")
	}
	if sec.Table.Total != 3 || sec.Table.Shown != 3 {
		t.Errorf("Total/Shown = %d/%d, want 3/3", sec.Table.Total, sec.Table.Shown)
	}
}

func TestBuildDocumentCareerCap(t *testing.T) {
	b := testBundle(ScopeCareer)
	for i := 0; i < 20; i++ {
		b.Career = append(b.Career, careerModel.CareerModel{
			CareerKind: careerModel.CareerKindAward, CareerTier: careerModel.CareerTierNational,
			CareerTitle: "Award", CareerOrganization: "Society",
			CareerStartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	b.Stats = computeStats(b)

	doc := BuildDocument(b, false)
	sec := sectionByHeading(doc, "Career History")
	if sec == nil || sec.Table == nil {
		t.Fatal("career section missing")
	}
	if sec.Table.Shown != careerRecordDisplayCap {
		t.Errorf("Shown = %d, want %d", sec.Table.Shown, careerRecordDisplayCap)
	}
}

func TestBuildDocumentChartsFlag(t *testing.T) {
	b := testBundle(ScopeTeaching)
	b.Evaluations = []evaluationModel.EvaluationModel{
		{EvaluationSemester: "fall", EvaluationYear: 2025, EvaluationOverall: 4.1, EvaluationResponseCount: 20},
		{EvaluationSemester: "spring", EvaluationYear: 2025, EvaluationOverall: 3.9, EvaluationResponseCount: 25},
	}
	b.Stats = computeStats(b)

	withCharts := BuildDocument(b, true)
	sec := sectionByHeading(withCharts, "Summary")
	if sec == nil || sec.Chart == nil {
		t.Fatal("expected chart in summary when charts requested")
	}
	if len(sec.Chart.Labels) != 2 || len(sec.Chart.Values) != 2 {
		t.Fatalf("chart has %d labels / %d values, want 2/2", len(sec.Chart.Labels), len(sec.Chart.Values))
	}
	// newest-first storage renders oldest-first
	if sec.Chart.Labels[0] != "Spring 2025" {
		t.Errorf("first chart label = %q, want Spring 2025", sec.Chart.Labels[0])
	}

	withoutCharts := BuildDocument(b, false)
	sec = sectionByHeading(withoutCharts, "Summary")
	if sec == nil {
		t.Fatal("summary section missing")
	}
	if sec.Chart != nil {
		t.Fatal("chart present although charts were not requested")
	}
}

func TestBuildDocumentSkipsEmptySections(t *testing.T) {
	doc := BuildDocument(testBundle(ScopePortfolio), false)
	for _, heading := range []string{"Teaching", "Research", "Service", "Professional Development", "Career History"} {
		if sectionByHeading(doc, heading) != nil {
			t.Errorf("empty bundle: section %q should be omitted", heading)
		}
	}
	if sectionByHeading(doc, "Profile") == nil || sectionByHeading(doc, "Summary") == nil {
		t.Error("profile and summary are always present")
	}
}

func TestRenderHTML(t *testing.T) {
	b := testBundle(ScopeTeaching)
	b.Courses = []courseModel.CourseModel{
		{CourseCode: "CS101", CourseName: "Intro <Programming>", CourseSemester: "fall", CourseYear: 2025, CourseEnrollment: 80},
	}
	b.Stats = computeStats(b)

	html, err := RenderHTML(BuildDocument(b, false))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "Maria Santos") {
		t.Error("teacher name missing from page")
	}
	if !strings.Contains(page, "CS101") {
		t.Error("course row missing from page")
	}
	// template escaping
	if strings.Contains(page, "<Programming>") {
		t.Error("unescaped HTML leaked into the page")
	}
	if !strings.Contains(page, "&lt;Programming&gt;") {
		t.Error("escaped course name missing")
	}
}
