package service

import (
	"context"
	"testing"

	"academicworld/internal/models"
	"academicworld/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadRepoStub is a generic stub for repository.ThreadRepository.
type threadRepoStub[T repository.Authored] struct {
	listByParentFn func(context.Context, uint) ([]T, error)
	getByIDFn      func(context.Context, uint) (*T, error)
	createFn       func(context.Context, *T) error
	deleteFn       func(context.Context, uint) error
}

func (s *threadRepoStub[T]) ListByParent(ctx context.Context, parentID uint) ([]T, error) {
	return s.listByParentFn(ctx, parentID)
}
func (s *threadRepoStub[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return s.getByIDFn(ctx, id)
}
func (s *threadRepoStub[T]) Create(ctx context.Context, post *T) error { return s.createFn(ctx, post) }
func (s *threadRepoStub[T]) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopThreadRepo[T repository.Authored]() *threadRepoStub[T] {
	return &threadRepoStub[T]{
		listByParentFn: func(_ context.Context, _ uint) ([]T, error) { return nil, nil },
		getByIDFn:      func(_ context.Context, _ uint) (*T, error) { return new(T), nil },
		createFn:       func(_ context.Context, _ *T) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// bookmarkRepoStub is a generic stub for repository.BookmarkRepository.
type bookmarkRepoStub[T any] struct {
	listPublicFn    func(context.Context) ([]T, error)
	listForUserFn   func(context.Context, uint) ([]T, error)
	createFn        func(context.Context, *T) error
	deleteForUserFn func(context.Context, uint, uint) error
}

func (s *bookmarkRepoStub[T]) ListPublic(ctx context.Context) ([]T, error) {
	return s.listPublicFn(ctx)
}
func (s *bookmarkRepoStub[T]) ListForUser(ctx context.Context, userID uint) ([]T, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *bookmarkRepoStub[T]) Create(ctx context.Context, bookmark *T) error {
	return s.createFn(ctx, bookmark)
}
func (s *bookmarkRepoStub[T]) DeleteForUser(ctx context.Context, userID, parentID uint) error {
	return s.deleteForUserFn(ctx, userID, parentID)
}

func noopBookmarkRepo[T any]() *bookmarkRepoStub[T] {
	return &bookmarkRepoStub[T]{
		listPublicFn:    func(_ context.Context) ([]T, error) { return nil, nil },
		listForUserFn:   func(_ context.Context, _ uint) ([]T, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *T) error { return nil },
		deleteForUserFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

// likeRepoStub is a generic stub for repository.LikeRepository.
type likeRepoStub[P any, L any] struct {
	likeFn           func(context.Context, *L, uint) error
	countForParentFn func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub[P, L]) Like(ctx context.Context, like *L, parentID uint) error {
	return s.likeFn(ctx, like, parentID)
}
func (s *likeRepoStub[P, L]) CountForParent(ctx context.Context, parentID uint) (int64, error) {
	return s.countForParentFn(ctx, parentID)
}

func noopLikeRepo[P any, L any]() *likeRepoStub[P, L] {
	return &likeRepoStub[P, L]{
		likeFn:           func(_ context.Context, _ *L, _ uint) error { return nil },
		countForParentFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

type courseEngagementStubs struct {
	catalog   *catalogRepoStub[models.Course]
	threads   *threadRepoStub[models.CoursePost]
	bookmarks *bookmarkRepoStub[models.CourseBookmark]
	likes     *likeRepoStub[models.Course, models.CourseLike]
}

func newCourseEngagement() (*EngagementService[models.Course, models.CoursePost, models.CourseBookmark, models.CourseLike], courseEngagementStubs) {
	stubs := courseEngagementStubs{
		catalog:   noopCatalogRepo[models.Course](),
		threads:   noopThreadRepo[models.CoursePost](),
		bookmarks: noopBookmarkRepo[models.CourseBookmark](),
		likes:     noopLikeRepo[models.Course, models.CourseLike](),
	}
	svc := NewEngagementService(
		models.CourseKind,
		stubs.catalog,
		stubs.threads,
		stubs.bookmarks,
		stubs.likes,
		models.NewCoursePost,
		models.NewCourseBookmark,
		models.NewCourseLike,
	)
	return svc, stubs
}

func TestEngagementService_ListPosts_MissingParent(t *testing.T) {
	t.Parallel()
	svc, stubs := newCourseEngagement()
	stubs.catalog.getByIDFn = func(_ context.Context, id uint) (*models.Course, error) {
		return nil, models.NewNotFoundError("course", id)
	}

	_, err := svc.ListPosts(context.Background(), 99)
	assertCode(t, err, models.CodeNotFound)
}

func TestEngagementService_AddPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires title and body", func(t *testing.T) {
		svc, _ := newCourseEngagement()
		_, err := svc.AddPost(ctx, AddPostInput{ParentID: 1, UserID: 2, Body: "b"})
		assertCode(t, err, models.CodeValidation)

		_, err = svc.AddPost(ctx, AddPostInput{ParentID: 1, UserID: 2, Title: "t"})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("creates with author and parent", func(t *testing.T) {
		svc, stubs := newCourseEngagement()
		var created *models.CoursePost
		stubs.threads.createFn = func(_ context.Context, post *models.CoursePost) error {
			created = post
			return nil
		}

		post, err := svc.AddPost(ctx, AddPostInput{ParentID: 1, UserID: 2, Title: "t", Body: "b"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created, post)
		assert.EqualValues(t, 1, created.CourseID)
		assert.EqualValues(t, 2, created.UserID)
		assert.Nil(t, created.ReplyToID)
	})

	t.Run("rejects reply target under another parent", func(t *testing.T) {
		svc, stubs := newCourseEngagement()
		stubs.threads.getByIDFn = func(_ context.Context, id uint) (*models.CoursePost, error) {
			return &models.CoursePost{ID: id, CourseID: 42}, nil
		}

		replyTo := uint(5)
		_, err := svc.AddPost(ctx, AddPostInput{ParentID: 1, UserID: 2, Title: "t", Body: "b", ReplyToID: &replyTo})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("accepts reply target under same parent", func(t *testing.T) {
		svc, stubs := newCourseEngagement()
		stubs.threads.getByIDFn = func(_ context.Context, id uint) (*models.CoursePost, error) {
			return &models.CoursePost{ID: id, CourseID: 1}, nil
		}

		replyTo := uint(5)
		post, err := svc.AddPost(ctx, AddPostInput{ParentID: 1, UserID: 2, Title: "t", Body: "b", ReplyToID: &replyTo})
		require.NoError(t, err)
		require.NotNil(t, post.ReplyToID)
		assert.EqualValues(t, 5, *post.ReplyToID)
	})
}

func TestEngagementService_DeletePost_Ownership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func() (*EngagementService[models.Course, models.CoursePost, models.CourseBookmark, models.CourseLike], *bool) {
		svc, stubs := newCourseEngagement()
		stubs.threads.getByIDFn = func(_ context.Context, id uint) (*models.CoursePost, error) {
			return &models.CoursePost{ID: id, UserID: 10, CourseID: 1}, nil
		}
		deleted := false
		stubs.threads.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		return svc, &deleted
	}

	t.Run("owner may delete", func(t *testing.T) {
		svc, deleted := setup()
		require.NoError(t, svc.DeletePost(ctx, DeletePostInput{PostID: 1, UserID: 10}))
		assert.True(t, *deleted)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		svc, deleted := setup()
		err := svc.DeletePost(ctx, DeletePostInput{PostID: 1, UserID: 11})
		assertCode(t, err, models.CodeForbidden)
		assert.False(t, *deleted)
	})

	t.Run("admin may delete any", func(t *testing.T) {
		svc, deleted := setup()
		require.NoError(t, svc.DeletePost(ctx, DeletePostInput{PostID: 1, UserID: 11, IsAdmin: true}))
		assert.True(t, *deleted)
	})
}

func TestEngagementService_AddBookmark(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults to private", func(t *testing.T) {
		svc, stubs := newCourseEngagement()
		var created *models.CourseBookmark
		stubs.bookmarks.createFn = func(_ context.Context, bookmark *models.CourseBookmark) error {
			created = bookmark
			return nil
		}

		_, err := svc.AddBookmark(ctx, AddBookmarkInput{ParentID: 1, UserID: 2})
		require.NoError(t, err)
		assert.Equal(t, models.VisibilityPrivate, created.Visibility)
	})

	t.Run("rejects unknown visibility", func(t *testing.T) {
		svc, _ := newCourseEngagement()
		_, err := svc.AddBookmark(ctx, AddBookmarkInput{ParentID: 1, UserID: 2, Visibility: "Shared"})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("missing parent", func(t *testing.T) {
		svc, stubs := newCourseEngagement()
		stubs.catalog.getByIDFn = func(_ context.Context, id uint) (*models.Course, error) {
			return nil, models.NewNotFoundError("course", id)
		}
		_, err := svc.AddBookmark(ctx, AddBookmarkInput{ParentID: 1, UserID: 2, Visibility: "Public"})
		assertCode(t, err, models.CodeNotFound)
	})
}

func TestEngagementService_Like_ReturnsFreshParent(t *testing.T) {
	t.Parallel()
	svc, stubs := newCourseEngagement()
	stubs.catalog.getByIDFn = func(_ context.Context, id uint) (*models.Course, error) {
		return &models.Course{ID: id, Likes: 4}, nil
	}
	var liked *models.CourseLike
	stubs.likes.likeFn = func(_ context.Context, like *models.CourseLike, _ uint) error {
		liked = like
		return nil
	}

	course, err := svc.Like(context.Background(), 2, 1)
	require.NoError(t, err)
	require.NotNil(t, liked)
	assert.EqualValues(t, 2, liked.UserID)
	assert.EqualValues(t, 1, liked.CourseID)
	assert.Equal(t, 4, course.Likes)
}

func TestEngagementService_Like_AlreadyLikedPropagates(t *testing.T) {
	t.Parallel()
	svc, stubs := newCourseEngagement()
	stubs.likes.likeFn = func(_ context.Context, _ *models.CourseLike, _ uint) error {
		return models.NewAlreadyLikedError()
	}

	_, err := svc.Like(context.Background(), 2, 1)
	assertCode(t, err, models.CodeAlreadyLiked)
}
