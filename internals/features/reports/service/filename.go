// file: internals/features/reports/service/filename.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	helper "teachereval_backend/internals/helpers"
)

// ExportFilename builds a collision-safe download name. The timestamp
// has second resolution, so a short random suffix keeps two exports of
// the same teacher in the same second apart.
func ExportFilename(teacherName string, scope Scope, at time.Time, ext string) string {
	slug := helper.Slugify(teacherName, 60)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s_%s.%s", slug, scope, at.Format("20060102-150405"), suffix, ext)
}
