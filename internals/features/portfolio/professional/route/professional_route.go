// file: internals/features/portfolio/professional/route/professional_route.go
package route

import (
	professionalController "teachereval_backend/internals/features/portfolio/professional/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfessionalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &professionalController.ProfessionalController{DB: db}
	professional := r.Group("/professional")
	professional.Post("/", ctl.CreateProfessional)
	professional.Get("/", ctl.ListProfessional)
	professional.Put("/:id", ctl.UpdateProfessional)
	professional.Delete("/:id", ctl.DeleteProfessional)
}
