// file: internals/features/portfolio/servicerecords/route/service_route.go
package route

import (
	serviceController "teachereval_backend/internals/features/portfolio/servicerecords/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ServiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &serviceController.ServiceController{DB: db}
	service := r.Group("/service")
	service.Post("/", ctl.CreateService)
	service.Get("/", ctl.ListService)
	service.Put("/:id", ctl.UpdateService)
	service.Delete("/:id", ctl.DeleteService)
}
