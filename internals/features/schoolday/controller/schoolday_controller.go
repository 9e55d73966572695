// file: internals/features/schoolday/controller/schoolday_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syncModel "teachereval_backend/internals/features/schoolday/model"
	schooldayService "teachereval_backend/internals/features/schoolday/service"
	helper "teachereval_backend/internals/helpers"
)

type SchooldayController struct {
	DB     *gorm.DB
	Syncer *schooldayService.Syncer
}

func NewSchooldayController(db *gorm.DB) *SchooldayController {
	return &SchooldayController{DB: db, Syncer: schooldayService.NewSyncer(db)}
}

// TriggerSync
// POST /api/a/schoolday/sync?kind=roster|evaluations|all&year=
//
// Runs inline; the caller waits for the run to finish and gets its
// outcome in the response. @daily the scheduler runs the same path.
func (ctl *SchooldayController) TriggerSync(c *fiber.Ctx) error {
	kind := c.Query("kind", "all")
	year := c.QueryInt("year", 0)

	var err error
	switch kind {
	case "roster":
		err = ctl.Syncer.SyncRoster(c.Context())
	case "evaluations":
		err = ctl.Syncer.SyncEvaluations(c.Context(), year)
	case "all":
		err = ctl.Syncer.SyncAll(c.Context())
	default:
		return fiber.NewError(fiber.StatusBadRequest, "kind must be roster, evaluations or all")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Schoolday sync failed: "+err.Error())
	}
	return helper.JsonOK(c, "Schoolday sync completed", fiber.Map{"kind": kind})
}

// ListSyncRuns
// GET /api/a/schoolday/syncs?kind=
func (ctl *SchooldayController) ListSyncRuns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&syncModel.SchooldaySyncModel{})
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("sync_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count sync runs")
	}

	var runs []syncModel.SchooldaySyncModel
	if err := q.Order("sync_started_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&runs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list sync runs")
	}

	return helper.JsonList(c, "Sync runs fetched", runs, helper.BuildPagination(paging, total))
}
