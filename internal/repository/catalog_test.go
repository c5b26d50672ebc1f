package repository

import (
	"context"
	"testing"

	"academicworld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewCatalogRepository[models.Course](db, models.CourseKind)
	ctx := context.Background()

	seedCourse(t, db, "Computer Science")

	err := repo.Create(ctx, &models.Course{
		Name:        "Computer Science",
		Duration:    4,
		Type:        models.CourseTypePG,
		Eligibility: "any",
	})
	assertAppErrorCode(t, err, models.CodeDuplicateKey)
}

func TestCatalogRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewCatalogRepository[models.Exam](db, models.ExamKind)

	_, err := repo.GetByID(context.Background(), 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestCatalogRepository_UpdateFields(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewCatalogRepository[models.Course](db, models.CourseKind)
	ctx := context.Background()

	course := seedCourse(t, db, "Physics")

	t.Run("no fields", func(t *testing.T) {
		err := repo.UpdateFields(ctx, course.ID, map[string]any{})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("missing row", func(t *testing.T) {
		err := repo.UpdateFields(ctx, 999, map[string]any{"duration": 3})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("applies named fields only", func(t *testing.T) {
		require.NoError(t, repo.UpdateFields(ctx, course.ID, map[string]any{"duration": 3}))

		updated, err := repo.GetByID(ctx, course.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Duration)
		assert.Equal(t, "Physics", updated.Name)
	})

	t.Run("duplicate unique field", func(t *testing.T) {
		seedCourse(t, db, "Chemistry")
		err := repo.UpdateFields(ctx, course.ID, map[string]any{"name": "Chemistry"})
		assertAppErrorCode(t, err, models.CodeDuplicateKey)
	})
}

func TestCatalogRepository_Ranking_OrderAndTieBreak(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewCatalogRepository[models.Course](db, models.CourseKind)
	ctx := context.Background()

	a := seedCourse(t, db, "Course A")
	b := seedCourse(t, db, "Course B")
	c := seedCourse(t, db, "Course C")
	d := seedCourse(t, db, "Course D")

	require.NoError(t, db.Model(a).UpdateColumn("likes", 1).Error)
	require.NoError(t, db.Model(b).UpdateColumn("likes", 3).Error)
	require.NoError(t, db.Model(c).UpdateColumn("likes", 2).Error)
	require.NoError(t, db.Model(d).UpdateColumn("likes", 2).Error)

	ranked, err := repo.Ranking(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	// Likes descending; equal likes break ties by ascending id.
	assert.Equal(t, b.ID, ranked[0].ID)
	assert.Equal(t, c.ID, ranked[1].ID)
	assert.Equal(t, d.ID, ranked[2].ID)
	assert.Equal(t, a.ID, ranked[3].ID)
}

func TestCatalogRepository_Delete_CascadesDependents(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	courseRepo := NewCatalogRepository[models.Course](db, models.CourseKind)
	academicsRepo := NewAcademicsRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Math")
	college := seedCollege(t, db, "Tech Institute", 1)
	exam := seedExam(t, db, "Entrance Exam")
	user := seedUser(t, db, "alice")

	require.NoError(t, academicsRepo.Create(ctx, &models.Academics{
		CourseID:   course.ID,
		CollegeID:  college.ID,
		ExamID:     exam.ID,
		CourseFee:  5000,
		CutoffRank: 100,
	}))
	require.NoError(t, db.Create(models.NewCoursePost(course.ID, user.ID, "hi", "body", nil)).Error)
	require.NoError(t, db.Create(models.NewCourseBookmark(course.ID, user.ID, models.VisibilityPublic)).Error)

	require.NoError(t, courseRepo.Delete(ctx, course.ID))

	var academicsCount, postCount, bookmarkCount int64
	require.NoError(t, db.Model(&models.Academics{}).Count(&academicsCount).Error)
	require.NoError(t, db.Model(&models.CoursePost{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.CourseBookmark{}).Count(&bookmarkCount).Error)
	assert.Zero(t, academicsCount)
	assert.Zero(t, postCount)
	assert.Zero(t, bookmarkCount)

	// The college survives and no longer appears as offering the course.
	colleges, err := academicsRepo.CollegesOffering(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, colleges)
}

func TestCatalogRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewCatalogRepository[models.College](db, models.CollegeKind)

	err := repo.Delete(context.Background(), 42)
	assertAppErrorCode(t, err, models.CodeNotFound)
}
