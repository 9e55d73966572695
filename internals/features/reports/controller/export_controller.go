// file: internals/features/reports/controller/export_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportService "teachereval_backend/internals/features/reports/service"
	helper "teachereval_backend/internals/helpers"
)

/* =========================================================
   Controller
   ========================================================= */

type ReportController struct {
	DB       *gorm.DB
	Agg      *reportService.Aggregator
	Renderer reportService.Renderer
}

func NewReportController(db *gorm.DB, renderer reportService.Renderer) *ReportController {
	return &ReportController{
		DB:       db,
		Agg:      reportService.NewAggregator(reportService.NewGormSource(db)),
		Renderer: renderer,
	}
}

/* =========================================================
   Request parsing
   ========================================================= */

type exportQuery struct {
	teacherID     uuid.UUID
	scope         reportService.Scope
	window        reportService.DateWindow
	includeCharts bool
	includeRaw    bool
}

func parseExportQuery(c *fiber.Ctx) (exportQuery, error) {
	var q exportQuery

	// teacher_id with the dashboard's legacy teacherId spelling as alias
	raw := c.Query("teacher_id")
	if raw == "" {
		raw = c.Query("teacherId")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "teacher_id must be a valid UUID")
	}
	q.teacherID = id

	scope, err := reportService.ParseScope(c.Query("scope", string(reportService.ScopeOverview)))
	if err != nil {
		return q, err
	}
	q.scope = scope

	if format := strings.ToLower(c.Query("format", "pdf")); format != "pdf" {
		return q, fiber.NewError(fiber.StatusBadRequest, "format must be pdf")
	}

	// include is a comma list of optional extras: charts, raw
	for _, part := range strings.Split(c.Query("include"), ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "":
		case "charts":
			q.includeCharts = true
		case "raw":
			q.includeRaw = true
		default:
			return q, fiber.NewError(fiber.StatusBadRequest, "include accepts: charts, raw")
		}
	}

	q.window, err = parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		return q, err
	}
	return q, nil
}

func parseWindow(fromRaw, toRaw string) (reportService.DateWindow, error) {
	var w reportService.DateWindow
	parse := func(name, raw string) (*time.Time, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be YYYY-MM-DD")
		}
		return &t, nil
	}
	var err error
	if w.From, err = parse("from", fromRaw); err != nil {
		return w, err
	}
	if w.To, err = parse("to", toRaw); err != nil {
		return w, err
	}
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		return w, fiber.NewError(fiber.StatusBadRequest, "to must not be before from")
	}
	return w, nil
}

/* =========================================================
   Handlers
   ========================================================= */

// ExportReport
// GET /api/a/reports/export?teacher_id=&scope=&format=pdf&include=charts,raw&from=&to=
//
// The response is fully buffered before the first byte is written:
// either a complete document with the right Content-Type, or a JSON
// error envelope. Never a truncated file.
func (ctl *ReportController) ExportReport(c *fiber.Ctx) error {
	q, err := parseExportQuery(c)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}

	bundle, err := ctl.Agg.Build(c.Context(), q.teacherID, q.scope, q.window)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}

	doc := reportService.BuildDocument(bundle, q.includeCharts)
	html, err := reportService.RenderHTML(doc)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}
	pdf, err := ctl.Renderer.RenderPDF(c.Context(), html)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}

	// raw data only ships with the full portfolio; for any other scope
	// the flag is ignored and the response stays a plain PDF
	if q.includeRaw && q.scope == reportService.ScopePortfolio {
		pdfName := reportService.ExportFilename(bundle.Teacher.TeacherFullName, q.scope, bundle.GeneratedAt, "pdf")
		archive, err := reportService.BuildArchive(bundle, pdf, pdfName)
		if err != nil {
			return ctl.mapPipelineError(c, err)
		}
		return sendFile(c, "application/zip",
			reportService.ExportFilename(bundle.Teacher.TeacherFullName, q.scope, bundle.GeneratedAt, "zip"),
			archive)
	}

	return sendFile(c, "application/pdf",
		reportService.ExportFilename(bundle.Teacher.TeacherFullName, q.scope, bundle.GeneratedAt, "pdf"),
		pdf)
}

// ReportStats
// GET /api/a/reports/stats?teacher_id=&scope=&from=&to=
//
// Same aggregation as the export, minus rendering. Dashboards poll this.
func (ctl *ReportController) ReportStats(c *fiber.Ctx) error {
	q, err := parseExportQuery(c)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}

	bundle, err := ctl.Agg.Build(c.Context(), q.teacherID, q.scope, q.window)
	if err != nil {
		return ctl.mapPipelineError(c, err)
	}

	return helper.JsonOK(c, "Report statistics computed", fiber.Map{
		"teacher_id":   bundle.Teacher.TeacherID,
		"teacher_name": bundle.Teacher.TeacherFullName,
		"scope":        bundle.Scope,
		"generated_at": bundle.GeneratedAt,
		"stats":        bundle.Stats,
	})
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Status(fiber.StatusOK).Send(body)
}

// mapPipelineError translates the pipeline sentinels into HTTP statuses.
// Anything unrecognized is treated as an internal error.
func (ctl *ReportController) mapPipelineError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	switch {
	case errors.Is(err, reportService.ErrInvalidScope):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, reportService.ErrTeacherNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	case errors.Is(err, reportService.ErrDataSource):
		log.Printf("❌ Report data source failure: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Upstream data source failed")
	case errors.Is(err, reportService.ErrRenderTimeout):
		log.Printf("❌ Report render timed out: %v", err)
		return helper.JsonError(c, fiber.StatusGatewayTimeout, "Report rendering timed out")
	case errors.Is(err, reportService.ErrRender):
		log.Printf("❌ Report render failure: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Report rendering failed")
	case errors.Is(err, reportService.ErrPackaging):
		log.Printf("❌ Report packaging failure: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Report packaging failed")
	}

	log.Printf("❌ Report export failure: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
