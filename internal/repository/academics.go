package repository

import (
	"context"
	"errors"

	"academicworld/internal/cache"
	"academicworld/internal/models"

	"gorm.io/gorm"
)

// AcademicsRepository manages the course/college/exam cross-reference table
// and its two denormalized lookup queries.
type AcademicsRepository interface {
	List(ctx context.Context) ([]models.Academics, error)
	// Create relies on the foreign key constraints to reject links to absent
	// parents; there is deliberately no pre-check.
	Create(ctx context.Context, rec *models.Academics) error
	Delete(ctx context.Context, id uint) error
	// CollegesOffering returns colleges reachable via academics rows with the
	// given course, one row per matching academics row. A college linked to
	// the course under several exams appears once per link.
	CollegesOffering(ctx context.Context, courseID uint) ([]models.College, error)
	// CollegesAndCoursesAccepting returns flat (college, course) projections
	// for academics rows with the given exam.
	CollegesAndCoursesAccepting(ctx context.Context, examID uint) ([]models.CollegeCourseRef, error)
}

type academicsRepository struct {
	db *gorm.DB
}

// NewAcademicsRepository returns a new AcademicsRepository implementation.
func NewAcademicsRepository(db *gorm.DB) AcademicsRepository {
	return &academicsRepository{db: db}
}

func (r *academicsRepository) List(ctx context.Context) ([]models.Academics, error) {
	var recs []models.Academics

	// Catalog listings change only on admin writes; cached without expiry.
	err := cache.Aside(ctx, cache.AcademicsCatalogKey, &recs, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Course").
			Preload("College").
			Preload("Exam").
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

func (r *academicsRepository) Create(ctx context.Context, rec *models.Academics) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateKeyError("admission record")
		}
		if isForeignKeyError(err) {
			return &models.AppError{
				Code:    models.CodeNotFound,
				Message: "Referenced course, college or exam does not exist",
			}
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *academicsRepository) Delete(ctx context.Context, id uint) error {
	var rec models.Academics
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("admission record", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&rec).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *academicsRepository) CollegesOffering(ctx context.Context, courseID uint) ([]models.College, error) {
	var colleges []models.College

	err := cache.Aside(ctx, cache.CollegesByCourseKey(courseID), &colleges, cache.CatalogTTL, func() error {
		// Inner join rather than an IN subquery; the result sets are
		// equivalent but the join plans better at scale.
		if err := r.db.WithContext(ctx).
			Model(&models.College{}).
			Select("colleges.*").
			Joins("INNER JOIN academics ON academics.college_id = colleges.id AND academics.course_id = ?", courseID).
			Find(&colleges).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *academicsRepository) CollegesAndCoursesAccepting(ctx context.Context, examID uint) ([]models.CollegeCourseRef, error) {
	var refs []models.CollegeCourseRef

	err := cache.Aside(ctx, cache.AcceptingByExamKey(examID), &refs, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Academics{}).
			Select("colleges.id AS college_id, colleges.name AS college_name, courses.id AS course_id, courses.name AS course_name").
			Joins("INNER JOIN colleges ON colleges.id = academics.college_id").
			Joins("INNER JOIN courses ON courses.id = academics.course_id").
			Where("academics.exam_id = ?", examID).
			Scan(&refs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}
