// file: internals/features/teachers/route/teacher_route.go
package route

import (
	teacherController "teachereval_backend/internals/features/teachers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD
Mount example: TeacherAdminRoutes(app.Group("/api/a"), db)
*/
func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &teacherController.TeacherController{DB: db}
	teachers := r.Group("/teachers")
	teachers.Post("/", ctl.CreateTeacher)      // POST   /api/a/teachers
	teachers.Get("/", ctl.ListTeachers)        // GET    /api/a/teachers
	teachers.Get("/:id", ctl.GetTeacher)       // GET    /api/a/teachers/:id
	teachers.Put("/:id", ctl.UpdateTeacher)    // PUT    /api/a/teachers/:id
	teachers.Delete("/:id", ctl.DeleteTeacher) // DELETE /api/a/teachers/:id?force=true
}
