// file: internals/features/reports/service/packager.go
package service

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
)

// BuildArchive packs the report PDF plus one uncapped CSV per non-empty
// collection into a zip. Packaging is all-or-nothing: any failure
// returns ErrPackaging and no archive. Only the portfolio scope with
// raw data requested ever reaches this path.
func BuildArchive(b *ReportBundle, pdf []byte, pdfName string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	// klauspost/flate is a drop-in deflate with better throughput
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	if err := writeArchiveFile(zw, pdfName, pdf); err != nil {
		return nil, err
	}

	type csvFile struct {
		name string
		data [][]string
	}
	files := []csvFile{
		{"summary.csv", summaryCSV(b)},
	}
	if len(b.Courses) > 0 {
		files = append(files, csvFile{"courses.csv", coursesCSV(b)})
	}
	if len(b.Evaluations) > 0 {
		files = append(files, csvFile{"evaluations.csv", evaluationsCSV(b)})
	}
	if len(b.Research) > 0 {
		files = append(files, csvFile{"research.csv", researchCSV(b)})
	}
	if len(b.Service) > 0 {
		files = append(files, csvFile{"service.csv", serviceCSV(b)})
	}
	if len(b.Professional) > 0 {
		files = append(files, csvFile{"professional_development.csv", professionalCSV(b)})
	}
	if len(b.Career) > 0 {
		files = append(files, csvFile{"career_history.csv", careerCSV(b)})
	}

	for _, f := range files {
		body, err := encodeCSV(f.data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPackaging, f.name, err)
		}
		if err := writeArchiveFile(zw, f.name, body); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close archive: %v", ErrPackaging, err)
	}
	return buf.Bytes(), nil
}

func writeArchiveFile(zw *zip.Writer, name string, body []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPackaging, name, err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPackaging, name, err)
	}
	return nil
}

func encodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func optStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return ftoa(*v)
}

// summaryCSV flattens the computed stats into label/value pairs so the
// zip is self-describing without the PDF.
func summaryCSV(b *ReportBundle) [][]string {
	rows := [][]string{
		{"section", "metric", "value"},
		{"profile", "teacher", b.Teacher.TeacherFullName},
		{"profile", "department", b.Teacher.TeacherDepartment},
		{"profile", "scope", string(b.Scope)},
		{"profile", "generated_at", b.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")},
	}

	appendJSON := func(section string, v any) {
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}
		var m map[string]json.Number
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return
		}
		for k, num := range m {
			rows = append(rows, []string{section, k, num.String()})
		}
	}
	st := b.Stats
	if st.Teaching != nil {
		appendJSON("teaching", st.Teaching)
	}
	if st.Research != nil {
		appendJSON("research", st.Research)
	}
	if st.Service != nil {
		appendJSON("service", st.Service)
	}
	if st.Professional != nil {
		appendJSON("professional", st.Professional)
	}
	if st.Career != nil {
		appendJSON("career", st.Career)
	}
	return rows
}

func coursesCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"course_code", "course_name", "semester", "year", "enrollment"}}
	for _, c := range b.Courses {
		rows = append(rows, []string{c.CourseCode, c.CourseName, c.CourseSemester, itoa(c.CourseYear), itoa(c.CourseEnrollment)})
	}
	return rows
}

func evaluationsCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"semester", "year", "overall", "teaching_quality", "content", "availability", "response_count"}}
	for _, ev := range b.Evaluations {
		rows = append(rows, []string{
			ev.EvaluationSemester, itoa(ev.EvaluationYear),
			ftoa(ev.EvaluationOverall), ftoa(ev.EvaluationTeachingQuality),
			ftoa(ev.EvaluationContent), ftoa(ev.EvaluationAvailability),
			itoa(ev.EvaluationResponseCount),
		})
	}
	return rows
}

func researchCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"kind", "title", "date", "status", "venue", "impact_factor", "citations", "authors", "funding_amount", "funding_agency"}}
	for _, r := range b.Research {
		rows = append(rows, []string{
			string(r.ResearchKind), r.ResearchTitle, fmtDate(r.ResearchDate), r.ResearchStatus,
			optStr(r.ResearchVenue), optFloat(r.ResearchImpactFactor), itoa(r.ResearchCitationCount),
			strings.Join(r.ResearchAuthors, "; "), ftoa(r.ResearchFundingAmount), optStr(r.ResearchFundingAgency),
		})
	}
	return rows
}

func serviceCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"kind", "organization", "role", "start_date", "end_date", "hours"}}
	for _, s := range b.Service {
		end := ""
		if s.ServiceEndDate != nil {
			end = fmtDate(*s.ServiceEndDate)
		}
		rows = append(rows, []string{
			string(s.ServiceKind), s.ServiceOrganization, s.ServiceRole,
			fmtDate(s.ServiceStartDate), end, ftoa(s.ServiceHours),
		})
	}
	return rows
}

func professionalCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"kind", "title", "institution", "completion_date", "duration_hours", "certificate_ref"}}
	for _, p := range b.Professional {
		rows = append(rows, []string{
			string(p.ProfessionalKind), p.ProfessionalTitle, p.ProfessionalInstitution,
			fmtDate(p.ProfessionalCompletionDate), ftoa(p.ProfessionalDurationHours),
			optStr(p.ProfessionalCertificateRef),
		})
	}
	return rows
}

func careerCSV(b *ReportBundle) [][]string {
	rows := [][]string{{"kind", "title", "organization", "tier", "start_date", "end_date"}}
	for _, ev := range b.Career {
		end := ""
		if ev.CareerEndDate != nil {
			end = fmtDate(*ev.CareerEndDate)
		}
		rows = append(rows, []string{
			string(ev.CareerKind), ev.CareerTitle, ev.CareerOrganization,
			string(ev.CareerTier), fmtDate(ev.CareerStartDate), end,
		})
	}
	return rows
}
