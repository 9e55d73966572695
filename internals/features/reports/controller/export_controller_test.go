// file: internals/features/reports/controller/export_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	reportService "teachereval_backend/internals/features/reports/service"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

var knownTeacherID = uuid.MustParse("3d0f8e9e-6f3a-4e7b-9a6a-111111111111")

type stubSource struct {
	research []researchModel.ResearchModel
}

func (s *stubSource) Teacher(ctx context.Context, id uuid.UUID) (teacherModel.TeacherModel, error) {
	if id != knownTeacherID {
		return teacherModel.TeacherModel{}, reportService.ErrTeacherNotFound
	}
	return teacherModel.TeacherModel{
		TeacherID:         id,
		TeacherFullName:   "Maria Santos",
		TeacherDepartment: "Computer Science",
		TeacherPosition:   "Professor",
	}, nil
}

func (s *stubSource) Courses(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]courseModel.CourseModel, error) {
	return nil, nil
}

func (s *stubSource) Evaluations(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]evaluationModel.EvaluationModel, error) {
	return nil, nil
}

func (s *stubSource) Research(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]researchModel.ResearchModel, error) {
	return s.research, nil
}

func (s *stubSource) Service(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]serviceModel.ServiceModel, error) {
	return nil, nil
}

func (s *stubSource) Professional(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]professionalModel.ProfessionalModel, error) {
	return nil, nil
}

func (s *stubSource) Career(ctx context.Context, teacherID uuid.UUID, w reportService.DateWindow) ([]careerModel.CareerModel, error) {
	return nil, nil
}

type stubRenderer struct {
	err error
}

func (r *stubRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.7 stub"), nil
}

func newTestApp(renderErr error) *fiber.App {
	app := fiber.New()
	ctl := &ReportController{
		Agg:      reportService.NewAggregator(&stubSource{}),
		Renderer: &stubRenderer{err: renderErr},
	}
	app.Get("/reports/export", ctl.ExportReport)
	app.Get("/reports/stats", ctl.ReportStats)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestExportReportPDF(t *testing.T) {
	app := newTestApp(nil)
	resp := doGet(t, app, "/reports/export?teacher_id="+knownTeacherID.String()+"&scope=overview")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "maria-santos_overview_")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))

	// legacy camelCase spelling still works
	resp = doGet(t, app, "/reports/export?teacherId="+knownTeacherID.String()+"&scope=overview")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExportReportRawOnlyForPortfolio(t *testing.T) {
	app := newTestApp(nil)

	// raw with a narrower scope is ignored, the response stays a PDF
	resp := doGet(t, app, "/reports/export?teacher_id="+knownTeacherID.String()+"&scope=teaching&include=raw")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	// portfolio + raw ships the archive
	resp = doGet(t, app, "/reports/export?teacher_id="+knownTeacherID.String()+"&scope=portfolio&include=raw")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".zip")

	body, _ := io.ReadAll(resp.Body)
	// zip magic
	assert.True(t, len(body) > 4 && body[0] == 'P' && body[1] == 'K')
}

func TestExportReportBadRequests(t *testing.T) {
	app := newTestApp(nil)

	cases := []struct {
		name   string
		target string
	}{
		{"missing teacher_id", "/reports/export?scope=overview"},
		{"bad teacher_id", "/reports/export?teacher_id=nope&scope=overview"},
		{"bad scope", "/reports/export?teacher_id=" + knownTeacherID.String() + "&scope=everything"},
		{"bad format", "/reports/export?teacher_id=" + knownTeacherID.String() + "&format=docx"},
		{"bad include", "/reports/export?teacher_id=" + knownTeacherID.String() + "&include=video"},
		{"bad from", "/reports/export?teacher_id=" + knownTeacherID.String() + "&from=yesterday"},
		{"inverted window", "/reports/export?teacher_id=" + knownTeacherID.String() + "&from=2026-01-01&to=2025-01-01"},
	}
	for _, tc := range cases {
		resp := doGet(t, app, tc.target)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func TestExportReportTeacherNotFound(t *testing.T) {
	app := newTestApp(nil)
	resp := doGet(t, app, "/reports/export?teacher_id="+uuid.NewString()+"&scope=overview")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportReportRenderFailures(t *testing.T) {
	timeoutApp := newTestApp(reportService.ErrRenderTimeout)
	resp := doGet(t, timeoutApp, "/reports/export?teacher_id="+knownTeacherID.String()+"&scope=overview")
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)

	failApp := newTestApp(reportService.ErrRender)
	resp = doGet(t, failApp, "/reports/export?teacher_id="+knownTeacherID.String()+"&scope=overview")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// render errors come back as the JSON envelope, never a partial file
	var body map[string]any
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, false, body["success"])
}

func TestReportStats(t *testing.T) {
	app := newTestApp(nil)
	resp := doGet(t, app, "/reports/stats?teacher_id="+knownTeacherID.String()+"&scope=research")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			TeacherName string `json:"teacher_name"`
			Scope       string `json:"scope"`
			Stats       struct {
				Research *struct {
					Publications int `json:"publications"`
				} `json:"research"`
				Teaching *struct{} `json:"teaching"`
			} `json:"stats"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Maria Santos", envelope.Data.TeacherName)
	assert.Equal(t, "research", envelope.Data.Scope)
	assert.NotNil(t, envelope.Data.Stats.Research)
	assert.Nil(t, envelope.Data.Stats.Teaching)
}
