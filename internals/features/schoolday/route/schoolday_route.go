// file: internals/features/schoolday/route/schoolday_route.go
package route

import (
	schooldayController "teachereval_backend/internals/features/schoolday/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: manual sync trigger + run history
Mount example: SchooldayAdminRoutes(app.Group("/api/a"), db)
*/
func SchooldayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schooldayController.NewSchooldayController(db)
	schoolday := r.Group("/schoolday")
	schoolday.Post("/sync", ctl.TriggerSync)  // POST /api/a/schoolday/sync?kind=all
	schoolday.Get("/syncs", ctl.ListSyncRuns) // GET  /api/a/schoolday/syncs
}
