// file: internals/features/portfolio/career/route/career_route.go
package route

import (
	careerController "teachereval_backend/internals/features/portfolio/career/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CareerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &careerController.CareerController{DB: db}
	career := r.Group("/career")
	career.Post("/", ctl.CreateCareer)
	career.Get("/", ctl.ListCareer)
	career.Put("/:id", ctl.UpdateCareer)
	career.Delete("/:id", ctl.DeleteCareer)
}
