// file: internals/features/courses/route/course_route.go
package route

import (
	courseController "teachereval_backend/internals/features/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &courseController.CourseController{DB: db}
	courses := r.Group("/courses")
	courses.Post("/", ctl.CreateCourse)
	courses.Get("/", ctl.ListCourses)
	courses.Put("/:id", ctl.UpdateCourse)
	courses.Delete("/:id", ctl.DeleteCourse)
}
