package service

import (
	"context"

	"academicworld/internal/models"
	"academicworld/internal/repository"
)

// EngagementService implements the discussion thread, bookmark list and like
// counter for one catalog entity kind. One generic implementation serves
// courses, colleges and exams; the factory funcs build the kind's concrete
// records.
type EngagementService[T models.CatalogEntity, P repository.Authored, B any, L any] struct {
	kind      models.EngagementKind
	catalog   repository.CatalogRepository[T]
	threads   repository.ThreadRepository[P]
	bookmarks repository.BookmarkRepository[B]
	likes     repository.LikeRepository[T, L]

	newPost     func(parentID, userID uint, title, body string, replyTo *uint) *P
	newBookmark func(parentID, userID uint, visibility models.Visibility) *B
	newLike     func(parentID, userID uint) *L
}

type AddPostInput struct {
	ParentID  uint
	UserID    uint
	Title     string
	Body      string
	ReplyToID *uint
}

type DeletePostInput struct {
	PostID  uint
	UserID  uint
	IsAdmin bool
}

type AddBookmarkInput struct {
	ParentID   uint
	UserID     uint
	Visibility string
}

func NewEngagementService[T models.CatalogEntity, P repository.Authored, B any, L any](
	kind models.EngagementKind,
	catalog repository.CatalogRepository[T],
	threads repository.ThreadRepository[P],
	bookmarks repository.BookmarkRepository[B],
	likes repository.LikeRepository[T, L],
	newPost func(parentID, userID uint, title, body string, replyTo *uint) *P,
	newBookmark func(parentID, userID uint, visibility models.Visibility) *B,
	newLike func(parentID, userID uint) *L,
) *EngagementService[T, P, B, L] {
	return &EngagementService[T, P, B, L]{
		kind:        kind,
		catalog:     catalog,
		threads:     threads,
		bookmarks:   bookmarks,
		likes:       likes,
		newPost:     newPost,
		newBookmark: newBookmark,
		newLike:     newLike,
	}
}

func (s *EngagementService[T, P, B, L]) ListPosts(ctx context.Context, parentID uint) ([]P, error) {
	// Listing an absent entity is not-found, not an empty list.
	if _, err := s.catalog.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.threads.ListByParent(ctx, parentID)
}

func (s *EngagementService[T, P, B, L]) AddPost(ctx context.Context, in AddPostInput) (*P, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if _, err := s.catalog.GetByID(ctx, in.ParentID); err != nil {
		return nil, err
	}
	if in.ReplyToID != nil {
		target, err := s.threads.GetByID(ctx, *in.ReplyToID)
		if err != nil {
			return nil, err
		}
		if (*target).ParentID() != in.ParentID {
			return nil, models.NewValidationError("Reply target belongs to a different " + s.kind.Name)
		}
	}

	post := s.newPost(in.ParentID, in.UserID, in.Title, in.Body, in.ReplyToID)
	if err := s.threads.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and, through the schema cascade, its reply
// subtree. Authors may delete their own posts; admins may delete any.
func (s *EngagementService[T, P, B, L]) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.threads.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if (*post).AuthorID() != in.UserID && !in.IsAdmin {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.threads.Delete(ctx, in.PostID)
}

func (s *EngagementService[T, P, B, L]) ListPublicBookmarks(ctx context.Context) ([]B, error) {
	return s.bookmarks.ListPublic(ctx)
}

func (s *EngagementService[T, P, B, L]) ListBookmarks(ctx context.Context, userID uint) ([]B, error) {
	return s.bookmarks.ListForUser(ctx, userID)
}

func (s *EngagementService[T, P, B, L]) AddBookmark(ctx context.Context, in AddBookmarkInput) (*B, error) {
	visibility := models.Visibility(in.Visibility)
	if in.Visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !visibility.Valid() {
		return nil, models.NewValidationError("Visibility must be Private or Public")
	}
	if _, err := s.catalog.GetByID(ctx, in.ParentID); err != nil {
		return nil, err
	}

	bookmark := s.newBookmark(in.ParentID, in.UserID, visibility)
	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *EngagementService[T, P, B, L]) RemoveBookmark(ctx context.Context, userID, parentID uint) error {
	return s.bookmarks.DeleteForUser(ctx, userID, parentID)
}

// Like records the user's like exactly once and bumps the entity's counter.
// Repeats come back as already-liked and leave the counter alone.
func (s *EngagementService[T, P, B, L]) Like(ctx context.Context, userID, parentID uint) (*T, error) {
	if err := s.likes.Like(ctx, s.newLike(parentID, userID), parentID); err != nil {
		return nil, err
	}
	return s.catalog.GetByID(ctx, parentID)
}

func (s *EngagementService[T, P, B, L]) Ranking(ctx context.Context) ([]T, error) {
	return s.catalog.Ranking(ctx)
}
