package database

import (
	"academicworld/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model. Engagement and academics tables
// carry ON DELETE CASCADE foreign keys, so parent deletion integrity lives in
// the schema rather than in application code.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.College{},
		&models.Exam{},
		&models.Academics{},
		&models.CoursePost{},
		&models.CollegePost{},
		&models.ExamPost{},
		&models.CourseBookmark{},
		&models.CollegeBookmark{},
		&models.ExamBookmark{},
		&models.CourseLike{},
		&models.CollegeLike{},
		&models.ExamLike{},
	)
}
