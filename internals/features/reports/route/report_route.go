// file: internals/features/reports/route/report_route.go
package route

import (
	reportController "teachereval_backend/internals/features/reports/controller"
	reportService "teachereval_backend/internals/features/reports/service"
	"teachereval_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: report export + stats
Mount example: ReportAdminRoutes(app.Group("/api/a"), db, renderPool)
*/
func ReportAdminRoutes(r fiber.Router, db *gorm.DB, renderer reportService.Renderer) {
	ctl := reportController.NewReportController(db, renderer)
	reports := r.Group("/reports")
	// exports hold a browser for the whole render, so they get the
	// tighter per-IP limit
	reports.Get("/export", middlewares.ExportRateLimiter(), ctl.ExportReport) // GET /api/a/reports/export
	reports.Get("/stats", ctl.ReportStats)                                    // GET /api/a/reports/stats
}
