package repository

import (
	"context"
	"errors"

	"academicworld/internal/cache"
	"academicworld/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository provides CRUD and like-ranking access for one catalog
// entity type (Course, College or Exam). A single generic implementation
// serves all three; the EngagementKind names the entity for error messages
// and cache keys.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	// UpdateFields applies a partial update built from an enumerated patch
	// struct. Fields are trusted column names, never raw client input.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	// Ranking returns all entities ordered by likes descending, ties broken
	// by ascending id. Results are served cache-aside with a bounded TTL.
	Ranking(ctx context.Context) ([]T, error)
}

type catalogRepository[T any] struct {
	db   *gorm.DB
	kind models.EngagementKind
}

// NewCatalogRepository returns the CatalogRepository for one entity kind.
func NewCatalogRepository[T any](db *gorm.DB, kind models.EngagementKind) CatalogRepository[T] {
	return &catalogRepository[T]{db: db, kind: kind}
}

func (r *catalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recs, nil
}

func (r *catalogRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(r.kind.Name, id)
		}
		return nil, models.NewInternalError(err)
	}
	return &rec, nil
}

func (r *catalogRepository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateKeyError(r.kind.Name)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *catalogRepository[T]) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return models.NewValidationError("No fields to update")
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return models.NewDuplicateKeyError(r.kind.Name)
		}
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(r.kind.Name, id)
	}
	return nil
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id uint) error {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError(r.kind.Name, id)
		}
		return models.NewInternalError(err)
	}
	// Dependent posts, bookmarks, likes and academics rows cascade in the DB.
	if err := r.db.WithContext(ctx).Delete(&rec).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *catalogRepository[T]) Ranking(ctx context.Context) ([]T, error) {
	var recs []T
	key := cache.RankingKey(r.kind.Name)

	err := cache.Aside(ctx, key, &recs, cache.RankingTTL, func() error {
		if err := r.db.WithContext(ctx).
			Order("likes DESC, id ASC").
			Find(&recs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
