// file: internals/features/portfolio/research/route/research_route.go
package route

import (
	researchController "teachereval_backend/internals/features/portfolio/research/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResearchAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &researchController.ResearchController{DB: db}
	research := r.Group("/research")
	research.Post("/", ctl.CreateResearch)
	research.Get("/", ctl.ListResearch)
	research.Put("/:id", ctl.UpdateResearch)
	research.Delete("/:id", ctl.DeleteResearch)
}
