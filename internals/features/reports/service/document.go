// file: internals/features/reports/service/document.go
package service

import (
	"fmt"
	"strings"
	"time"

	researchModel "teachereval_backend/internals/features/portfolio/research/model"
)

// The renderer is data-driven: a bundle becomes an ordered list of
// section descriptors and a single template walks them, so layout logic
// exists exactly once instead of once per scope.

// Display caps. Sections show at most this many records; the underlying
// CSV exports are never capped. Career gets a higher cap because career
// histories are the one collection reviewers expect in full.
const (
	recordDisplayCap       = 10
	careerRecordDisplayCap = 15
)

type Document struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Sections    []Section
}

type Section struct {
	Heading string
	Stats   []StatRow
	Table   *RecordTable
	Chart   *ChartSpec
	Note    string
}

type StatRow struct {
	Label string
	Value string
}

type RecordTable struct {
	Headers []string
	Rows    [][]string
	// Total is the full collection size; Shown = min(Total, cap)
	Total int
	Shown int
}

// ChartSpec describes a simple horizontal bar chart drawn in the page.
type ChartSpec struct {
	Title  string
	Labels []string
	Values []float64
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

func fmtOptDate(t *time.Time) string {
	if t == nil {
		return "ongoing"
	}
	return fmtDate(*t)
}

func fmtFloat(v float64) string { return fmt.Sprintf("%.2f", v) }

func fmtMoney(v float64) string { return fmt.Sprintf("$%.2f", v) }

func capRows(rows [][]string, limit int) ([][]string, int) {
	if len(rows) <= limit {
		return rows, len(rows)
	}
	return rows[:limit], limit
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildDocument shapes one bundle into a renderable document: cover,
// summary, one section per populated collection, appendix. Chart
// descriptors are only emitted when includeCharts is set; a false flag
// omits them entirely rather than rendering empty frames.
func BuildDocument(b *ReportBundle, includeCharts bool) Document {
	doc := Document{
		Title:       b.Teacher.TeacherFullName,
		Subtitle:    fmt.Sprintf("%s Report — %s, %s", titleCase(string(b.Scope)), b.Teacher.TeacherDepartment, b.Teacher.TeacherPosition),
		GeneratedAt: b.GeneratedAt,
	}

	// cover
	cover := Section{
		Heading: "Profile",
		Stats: []StatRow{
			{Label: "Name", Value: b.Teacher.TeacherFullName},
			{Label: "Department", Value: b.Teacher.TeacherDepartment},
			{Label: "Position", Value: b.Teacher.TeacherPosition},
			{Label: "Hire date", Value: fmtDate(b.Teacher.TeacherHireDate)},
		},
	}
	if !b.Window.IsZero() {
		from, to := "…", "…"
		if b.Window.From != nil {
			from = fmtDate(*b.Window.From)
		}
		if b.Window.To != nil {
			to = fmtDate(*b.Window.To)
		}
		cover.Stats = append(cover.Stats, StatRow{Label: "Period", Value: from + " to " + to})
	}
	doc.Sections = append(doc.Sections, cover)

	doc.Sections = append(doc.Sections, summarySection(b, includeCharts))

	if b.Scope.includesTeaching() && (len(b.Courses) > 0 || len(b.Evaluations) > 0) {
		doc.Sections = append(doc.Sections, teachingSection(b))
	}
	if b.Scope.includesResearch() && len(b.Research) > 0 {
		doc.Sections = append(doc.Sections, researchSection(b))
	}
	if b.Scope.includesService() && len(b.Service) > 0 {
		doc.Sections = append(doc.Sections, serviceSection(b))
	}
	if b.Scope.includesProfessional() && len(b.Professional) > 0 {
		doc.Sections = append(doc.Sections, professionalSection(b))
	}
	if b.Scope.includesCareer() && len(b.Career) > 0 {
		doc.Sections = append(doc.Sections, careerSection(b))
	}

	// appendix
	doc.Sections = append(doc.Sections, Section{
		Heading: "Appendix",
		Note: fmt.Sprintf(
			"Generated by the teacher evaluation platform. Sections display up to %d records (%d for career history); full data is available in the raw export.",
			recordDisplayCap, careerRecordDisplayCap),
	})

	return doc
}

func summarySection(b *ReportBundle, includeCharts bool) Section {
	sec := Section{Heading: "Summary"}
	st := b.Stats

	if st.Teaching != nil {
		sec.Stats = append(sec.Stats,
			StatRow{Label: "Courses taught", Value: fmt.Sprintf("%d", st.Teaching.TotalCourses)},
			StatRow{Label: "Evaluation responses", Value: fmt.Sprintf("%d", st.Teaching.TotalResponses)},
			StatRow{Label: "Average rating", Value: fmtFloat(st.Teaching.AvgOverall)},
		)
	}
	if st.Research != nil {
		sec.Stats = append(sec.Stats,
			StatRow{Label: "Publications", Value: fmt.Sprintf("%d", st.Research.Publications)},
			StatRow{Label: "Grants", Value: fmt.Sprintf("%d", st.Research.Grants)},
			StatRow{Label: "Patents", Value: fmt.Sprintf("%d", st.Research.Patents)},
			StatRow{Label: "Total funding", Value: fmtMoney(st.Research.TotalFunding)},
			StatRow{Label: "Citations", Value: fmt.Sprintf("%d", st.Research.TotalCitations)},
			StatRow{Label: "Average impact factor", Value: fmtFloat(st.Research.AvgImpactFactor)},
		)
	}
	if st.Service != nil {
		sec.Stats = append(sec.Stats,
			StatRow{Label: "Service contributions", Value: fmt.Sprintf("%d", st.Service.TotalContributions)},
			StatRow{Label: "Service hours", Value: fmtFloat(st.Service.TotalHours)},
		)
	}
	if st.Professional != nil {
		sec.Stats = append(sec.Stats,
			StatRow{Label: "Development activities", Value: fmt.Sprintf("%d", st.Professional.TotalActivities)},
			StatRow{Label: "Development hours", Value: fmtFloat(st.Professional.TotalHours)},
		)
	}
	if st.Career != nil {
		sec.Stats = append(sec.Stats,
			StatRow{Label: "Career events", Value: fmt.Sprintf("%d", st.Career.TotalEvents)},
			StatRow{Label: "Awards", Value: fmt.Sprintf("%d", st.Career.Awards)},
		)
	}

	if includeCharts && st.Teaching != nil && len(b.Evaluations) > 0 {
		chart := &ChartSpec{Title: "Overall rating by term"}
		// evaluations arrive newest-first; chart reads oldest-first
		for i := len(b.Evaluations) - 1; i >= 0; i-- {
			ev := b.Evaluations[i]
			chart.Labels = append(chart.Labels, fmt.Sprintf("%s %d", titleCase(ev.EvaluationSemester), ev.EvaluationYear))
			chart.Values = append(chart.Values, ev.EvaluationOverall)
		}
		sec.Chart = chart
	}

	return sec
}

func teachingSection(b *ReportBundle) Section {
	rows := make([][]string, 0, len(b.Courses))
	for _, c := range b.Courses {
		rows = append(rows, []string{
			c.CourseCode, c.CourseName,
			fmt.Sprintf("%s %d", titleCase(c.CourseSemester), c.CourseYear),
			fmt.Sprintf("%d", c.CourseEnrollment),
		})
	}
	capped, shown := capRows(rows, recordDisplayCap)
	return Section{
		Heading: "Teaching",
		Table: &RecordTable{
			Headers: []string{"Code", "Course", "Term", "Enrollment"},
			Rows:    capped,
			Total:   len(rows),
			Shown:   shown,
		},
	}
}

func researchSection(b *ReportBundle) Section {
	rows := make([][]string, 0, len(b.Research))
	for _, r := range b.Research {
		detail := ""
		switch r.ResearchKind {
		case researchModel.ResearchKindPublication:
			if r.ResearchImpactFactor != nil {
				detail = "IF " + fmtFloat(*r.ResearchImpactFactor)
			}
		case researchModel.ResearchKindGrant:
			detail = fmtMoney(r.ResearchFundingAmount)
		case researchModel.ResearchKindPatent:
			detail = r.ResearchStatus
		}
		rows = append(rows, []string{
			titleCase(string(r.ResearchKind)), r.ResearchTitle, fmtDate(r.ResearchDate), r.ResearchStatus, detail,
		})
	}
	capped, shown := capRows(rows, recordDisplayCap)
	return Section{
		Heading: "Research",
		Table: &RecordTable{
			Headers: []string{"Type", "Title", "Date", "Status", "Detail"},
			Rows:    capped,
			Total:   len(rows),
			Shown:   shown,
		},
	}
}

func serviceSection(b *ReportBundle) Section {
	rows := make([][]string, 0, len(b.Service))
	for _, s := range b.Service {
		rows = append(rows, []string{
			titleCase(string(s.ServiceKind)), s.ServiceOrganization, s.ServiceRole,
			fmtDate(s.ServiceStartDate), fmtOptDate(s.ServiceEndDate), fmtFloat(s.ServiceHours),
		})
	}
	capped, shown := capRows(rows, recordDisplayCap)
	return Section{
		Heading: "Service",
		Table: &RecordTable{
			Headers: []string{"Type", "Organization", "Role", "Start", "End", "Hours"},
			Rows:    capped,
			Total:   len(rows),
			Shown:   shown,
		},
	}
}

func professionalSection(b *ReportBundle) Section {
	rows := make([][]string, 0, len(b.Professional))
	for _, p := range b.Professional {
		rows = append(rows, []string{
			titleCase(string(p.ProfessionalKind)), p.ProfessionalTitle, p.ProfessionalInstitution,
			fmtDate(p.ProfessionalCompletionDate), fmtFloat(p.ProfessionalDurationHours),
		})
	}
	capped, shown := capRows(rows, recordDisplayCap)
	return Section{
		Heading: "Professional Development",
		Table: &RecordTable{
			Headers: []string{"Type", "Title", "Institution", "Completed", "Hours"},
			Rows:    capped,
			Total:   len(rows),
			Shown:   shown,
		},
	}
}

func careerSection(b *ReportBundle) Section {
	rows := make([][]string, 0, len(b.Career))
	for _, ev := range b.Career {
		rows = append(rows, []string{
			titleCase(string(ev.CareerKind)), ev.CareerTitle, ev.CareerOrganization,
			titleCase(string(ev.CareerTier)), fmtDate(ev.CareerStartDate), fmtOptDate(ev.CareerEndDate),
		})
	}
	capped, shown := capRows(rows, careerRecordDisplayCap)
	return Section{
		Heading: "Career History",
		Table: &RecordTable{
			Headers: []string{"Type", "Title", "Organization", "Level", "Start", "End"},
			Rows:    capped,
			Total:   len(rows),
			Shown:   shown,
		},
	}
}
