// file: internals/features/schoolday/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	schooldayService "teachereval_backend/internals/features/schoolday/service"
)

// A single run must not outlive the gap to the next one.
const syncRunTimeout = 20 * time.Minute

// StartSchooldaySyncScheduler pulls the Schoolday roster and evaluation
// aggregates every night. Failures are logged and retried at the next
// tick; there is no catch-up for missed runs.
func StartSchooldaySyncScheduler(db *gorm.DB) {
	syncer := schooldayService.NewSyncer(db)

	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncRunTimeout)
		defer cancel()

		log.Println("🔄 Schoolday: nightly sync starting")
		if err := syncer.SyncAll(ctx); err != nil {
			log.Printf("❌ Schoolday: nightly sync failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("❌ Schoolday: could not schedule nightly sync: %v", err)
		return
	}

	c.Start()
	log.Println("✅ Schoolday sync scheduler started (@daily)")
}
