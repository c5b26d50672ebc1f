package repository

import (
	"errors"
	"testing"

	"academicworld/internal/cache"
	"academicworld/internal/database"
	"academicworld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with foreign keys enforced,
// so the ON DELETE CASCADE behavior under test matches PostgreSQL. The pool
// is pinned to one connection to keep the in-memory database alive.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Repository tests exercise the DB path, not the cache.
	cache.SetClient(nil)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, name string) *models.Course {
	t.Helper()
	course := &models.Course{
		Name:        name,
		Duration:    4,
		Type:        models.CourseTypeUG,
		Eligibility: "12th grade",
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedCollege(t *testing.T, db *gorm.DB, name string, rank int) *models.College {
	t.Helper()
	college := &models.College{
		Name:    name,
		Rank:    rank,
		City:    "Springfield",
		State:   "IL",
		Country: "USA",
		Address: "1 Main St",
	}
	require.NoError(t, db.Create(college).Error)
	return college
}

func seedExam(t *testing.T, db *gorm.DB, name string) *models.Exam {
	t.Helper()
	exam := &models.Exam{
		Name:        name,
		Eligibility: "12th grade",
		Syllabus:    "everything",
		Fee:         100,
	}
	require.NoError(t, db.Create(exam).Error)
	return exam
}

// assertAppErrorCode asserts that err is an AppError carrying the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
