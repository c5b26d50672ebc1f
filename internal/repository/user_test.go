package repository

import (
	"context"
	"testing"

	"academicworld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByIdentifier(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "maria")

	t.Run("by username", func(t *testing.T) {
		user, err := repo.GetByIdentifier(ctx, "maria")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := repo.GetByIdentifier(ctx, "maria@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "maria", user.Username)
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		user, err := repo.GetByIdentifier(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "nina")

	err := repo.Create(ctx, &models.User{
		Name:     "Other",
		Username: "nina",
		Email:    "other@example.com",
		Password: "hashed",
	})
	assertAppErrorCode(t, err, models.CodeDuplicateKey)

	err = repo.Create(ctx, &models.User{
		Name:     "Other",
		Username: "other",
		Email:    "nina@example.com",
		Password: "hashed",
	})
	assertAppErrorCode(t, err, models.CodeDuplicateKey)
}

func TestUserRepository_Delete_CascadesEngagement(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "oscar")
	course := seedCourse(t, db, "Music")

	require.NoError(t, db.Create(models.NewCourseBookmark(course.ID, user.ID, models.VisibilityPublic)).Error)
	require.NoError(t, db.Create(models.NewCourseLike(course.ID, user.ID)).Error)

	require.NoError(t, repo.Delete(ctx, user.ID))

	var bookmarks, likes int64
	require.NoError(t, db.Model(&models.CourseBookmark{}).Count(&bookmarks).Error)
	require.NoError(t, db.Model(&models.CourseLike{}).Count(&likes).Error)
	assert.Zero(t, bookmarks)
	assert.Zero(t, likes)
}
