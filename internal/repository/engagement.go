package repository

import (
	"context"
	"errors"

	"academicworld/internal/models"

	"gorm.io/gorm"
)

// Authored is implemented by post models so the generic thread repository and
// service can enforce ownership and reply placement without knowing the
// concrete type.
type Authored interface {
	PostID() uint
	AuthorID() uint
	ParentID() uint
}

// ThreadRepository stores discussion posts for one catalog entity kind.
// Posts form a reply tree through an optional self-reference; deleting a post
// removes its subtree via the schema's cascade.
type ThreadRepository[T Authored] interface {
	ListByParent(ctx context.Context, parentID uint) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, post *T) error
	Delete(ctx context.Context, id uint) error
}

type threadRepository[T Authored] struct {
	db   *gorm.DB
	kind models.EngagementKind
}

// NewThreadRepository returns the ThreadRepository for one entity kind.
func NewThreadRepository[T Authored](db *gorm.DB, kind models.EngagementKind) ThreadRepository[T] {
	return &threadRepository[T]{db: db, kind: kind}
}

func (r *threadRepository[T]) ListByParent(ctx context.Context, parentID uint) ([]T, error) {
	var posts []T
	err := r.db.WithContext(ctx).
		Where(r.kind.ParentColumn+" = ?", parentID).
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *threadRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var post T
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *threadRepository[T]) Create(ctx context.Context, post *T) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		// A broken FK means the parent entity, author or reply target is gone.
		if isForeignKeyError(err) {
			return &models.AppError{
				Code:    models.CodeNotFound,
				Message: "Referenced " + r.kind.Name + ", user or post does not exist",
			}
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository[T]) Delete(ctx context.Context, id uint) error {
	var post T
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("post", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// BookmarkRepository stores per-user bookmark entries for one entity kind.
type BookmarkRepository[T any] interface {
	// ListPublic returns every entry any user has marked Public.
	ListPublic(ctx context.Context) ([]T, error)
	ListForUser(ctx context.Context, userID uint) ([]T, error)
	Create(ctx context.Context, bookmark *T) error
	// DeleteForUser removes the caller's bookmark of the given entity.
	DeleteForUser(ctx context.Context, userID, parentID uint) error
}

type bookmarkRepository[T any] struct {
	db   *gorm.DB
	kind models.EngagementKind
}

// NewBookmarkRepository returns the BookmarkRepository for one entity kind.
func NewBookmarkRepository[T any](db *gorm.DB, kind models.EngagementKind) BookmarkRepository[T] {
	return &bookmarkRepository[T]{db: db, kind: kind}
}

func (r *bookmarkRepository[T]) ListPublic(ctx context.Context) ([]T, error) {
	var bookmarks []T
	err := r.db.WithContext(ctx).
		Where("visibility = ?", models.VisibilityPublic).
		Order("id ASC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return bookmarks, nil
}

func (r *bookmarkRepository[T]) ListForUser(ctx context.Context, userID uint) ([]T, error) {
	var bookmarks []T
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return bookmarks, nil
}

func (r *bookmarkRepository[T]) Create(ctx context.Context, bookmark *T) error {
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateKeyError("bookmark")
		}
		if isForeignKeyError(err) {
			return &models.AppError{
				Code:    models.CodeNotFound,
				Message: "Referenced " + r.kind.Name + " or user does not exist",
			}
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookmarkRepository[T]) DeleteForUser(ctx context.Context, userID, parentID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+r.kind.ParentColumn+" = ?", userID, parentID).
		Delete(new(T))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("bookmark", parentID)
	}
	return nil
}

// LikeRepository records at-most-one like per (user, entity) pair and keeps
// the entity's denormalized counter in step. P is the parent entity model,
// L the like record model.
type LikeRepository[P any, L any] interface {
	// Like inserts the like record and bumps the parent counter in one
	// transaction, so the count never drifts from the number of records.
	Like(ctx context.Context, like *L, parentID uint) error
	CountForParent(ctx context.Context, parentID uint) (int64, error)
}

type likeRepository[P any, L any] struct {
	db   *gorm.DB
	kind models.EngagementKind
}

// NewLikeRepository returns the LikeRepository for one entity kind.
func NewLikeRepository[P any, L any](db *gorm.DB, kind models.EngagementKind) LikeRepository[P, L] {
	return &likeRepository[P, L]{db: db, kind: kind}
}

func (r *likeRepository[P, L]) Like(ctx context.Context, like *L, parentID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent P
		if err := tx.First(&parent, parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError(r.kind.Name, parentID)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Create(like).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewAlreadyLikedError()
			}
			return models.NewInternalError(err)
		}
		if err := tx.Model(new(P)).
			Where("id = ?", parentID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	return err
}

func (r *likeRepository[P, L]) CountForParent(ctx context.Context, parentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(L)).
		Where(r.kind.ParentColumn+" = ?", parentID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
