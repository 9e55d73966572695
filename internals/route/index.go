// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "teachereval_backend/internals/features/courses/route"
	evaluationRoute "teachereval_backend/internals/features/evaluations/route"
	careerRoute "teachereval_backend/internals/features/portfolio/career/route"
	professionalRoute "teachereval_backend/internals/features/portfolio/professional/route"
	researchRoute "teachereval_backend/internals/features/portfolio/research/route"
	serviceRoute "teachereval_backend/internals/features/portfolio/servicerecords/route"
	reportRoute "teachereval_backend/internals/features/reports/route"
	reportService "teachereval_backend/internals/features/reports/service"
	schooldayRoute "teachereval_backend/internals/features/schoolday/route"
	teacherRoute "teachereval_backend/internals/features/teachers/route"

	"teachereval_backend/internals/configs"
	"teachereval_backend/internals/middlewares"
)

// SetupRoutes mounts every feature behind the admin gate. All writes
// and all exports live under /api/a; there is no public surface besides
// /health.
func SetupRoutes(app *fiber.App, db *gorm.DB, renderPool *reportService.ChromePool) {
	log.Println("[INFO] Setting up admin routes")

	admin := app.Group("/api/a",
		middlewares.AuthJWT(middlewares.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		middlewares.IsAdmin(),
	)

	teacherRoute.TeacherAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	evaluationRoute.EvaluationAdminRoutes(admin, db)
	researchRoute.ResearchAdminRoutes(admin, db)
	serviceRoute.ServiceAdminRoutes(admin, db)
	professionalRoute.ProfessionalAdminRoutes(admin, db)
	careerRoute.CareerAdminRoutes(admin, db)

	log.Println("[INFO] Setting up report routes")
	reportRoute.ReportAdminRoutes(admin, db, renderPool)

	log.Println("[INFO] Setting up schoolday routes")
	schooldayRoute.SchooldayAdminRoutes(admin, db)
}
