// file: internals/features/reports/service/packager_test.go
package service

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"testing"
	"time"

	courseModel "teachereval_backend/internals/features/courses/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		files[f.Name] = body
	}
	return files
}

func parseCSV(t *testing.T, body []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return rows
}

func TestBuildArchive(t *testing.T) {
	b := testBundle(ScopePortfolio)
	b.Courses = []courseModel.CourseModel{
		{CourseCode: "CS101", CourseName: "Intro", CourseSemester: "fall", CourseYear: 2025, CourseEnrollment: 60},
		{CourseCode: "CS250", CourseName: "Algorithms", CourseSemester: "spring", CourseYear: 2026, CourseEnrollment: 45},
	}
	b.Research = []researchModel.ResearchModel{
		{ResearchKind: researchModel.ResearchKindGrant, ResearchTitle: "NSF Grant", ResearchStatus: "awarded",
			ResearchDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ResearchFundingAmount: 150000},
		{ResearchKind: researchModel.ResearchKindGrant, ResearchTitle: "State Grant", ResearchStatus: "awarded",
			ResearchDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ResearchFundingAmount: 100000},
		{ResearchKind: researchModel.ResearchKindPublication, ResearchTitle: "Paper", ResearchStatus: "published",
			ResearchDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), ResearchImpactFactor: fptr(3.1), ResearchCitationCount: 4},
	}
	b.Stats = computeStats(b)

	pdf := []byte("%PDF-1.7 fake")
	archive, err := BuildArchive(b, pdf, "report.pdf")
	if err != nil {
		t.Fatalf("BuildArchive: %v", err)
	}

	files := readArchive(t, archive)

	// PDF survives compression byte for byte
	if !bytes.Equal(files["report.pdf"], pdf) {
		t.Error("pdf content changed in archive")
	}

	for _, name := range []string{"summary.csv", "courses.csv", "research.csv"} {
		if _, ok := files[name]; !ok {
			t.Errorf("archive missing %s", name)
		}
	}
	// empty collections get no file
	for _, name := range []string{"evaluations.csv", "service.csv", "professional_development.csv", "career_history.csv"} {
		if _, ok := files[name]; ok {
			t.Errorf("archive has %s for an empty collection", name)
		}
	}

	// raw CSV rows are uncapped and sum back to the computed stats
	research := parseCSV(t, files["research.csv"])
	if len(research) != len(b.Research)+1 {
		t.Fatalf("research.csv has %d rows, want %d", len(research), len(b.Research)+1)
	}
	fundingCol := -1
	for i, h := range research[0] {
		if h == "funding_amount" {
			fundingCol = i
		}
	}
	if fundingCol < 0 {
		t.Fatal("research.csv missing funding_amount column")
	}
	var fundingSum float64
	for _, row := range research[1:] {
		v, err := strconv.ParseFloat(row[fundingCol], 64)
		if err != nil {
			t.Fatalf("bad funding value %q: %v", row[fundingCol], err)
		}
		fundingSum += v
	}
	if !almostEqual(fundingSum, b.Stats.Research.TotalFunding) {
		t.Errorf("csv funding sum %v != stats total %v", fundingSum, b.Stats.Research.TotalFunding)
	}

	// summary carries the same figures
	summary := parseCSV(t, files["summary.csv"])
	found := false
	for _, row := range summary {
		if len(row) == 3 && row[0] == "research" && row[1] == "total_funding" {
			found = true
			v, _ := strconv.ParseFloat(row[2], 64)
			if !almostEqual(v, 250000) {
				t.Errorf("summary total_funding = %v, want 250000", v)
			}
		}
	}
	if !found {
		t.Error("summary.csv missing research total_funding row")
	}
}
