// file: internals/databases/migrate.go
package database

import (
	"log"

	courseModel "teachereval_backend/internals/features/courses/model"
	evaluationModel "teachereval_backend/internals/features/evaluations/model"
	careerModel "teachereval_backend/internals/features/portfolio/career/model"
	professionalModel "teachereval_backend/internals/features/portfolio/professional/model"
	researchModel "teachereval_backend/internals/features/portfolio/research/model"
	serviceModel "teachereval_backend/internals/features/portfolio/servicerecords/model"
	syncModel "teachereval_backend/internals/features/schoolday/model"
	teacherModel "teachereval_backend/internals/features/teachers/model"
)

// MigrateAll runs gorm AutoMigrate over every table. Gated behind
// DB_AUTO_MIGRATE so production schemas stay under operator control.
func MigrateAll() {
	if getenv("DB_AUTO_MIGRATE", "false") != "true" {
		return
	}
	log.Println("🔄 Running schema migration...")
	err := DB.AutoMigrate(
		&teacherModel.TeacherModel{},
		&courseModel.CourseModel{},
		&evaluationModel.EvaluationModel{},
		&researchModel.ResearchModel{},
		&serviceModel.ServiceModel{},
		&professionalModel.ProfessionalModel{},
		&careerModel.CareerModel{},
		&syncModel.SchooldaySyncModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migration done.")
}
