// file: internals/features/evaluations/route/evaluation_route.go
package route

import (
	evaluationController "teachereval_backend/internals/features/evaluations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &evaluationController.EvaluationController{DB: db}
	evaluations := r.Group("/evaluations")
	evaluations.Post("/", ctl.CreateEvaluation)
	evaluations.Get("/", ctl.ListEvaluations)
	evaluations.Put("/:id", ctl.UpdateEvaluation)
	evaluations.Delete("/:id", ctl.DeleteEvaluation)
}
