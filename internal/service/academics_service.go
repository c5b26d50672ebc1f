package service

import (
	"context"

	"academicworld/internal/models"
	"academicworld/internal/repository"
)

// AcademicsService manages admission records, the cross-reference rows that
// tie a course, a college and an exam together with a fee and cutoff rank.
type AcademicsService struct {
	academicsRepo repository.AcademicsRepository
}

type CreateAcademicsInput struct {
	CourseID   uint    `json:"course_id"`
	CollegeID  uint    `json:"college_id"`
	ExamID     uint    `json:"exam_id"`
	CourseFee  float64 `json:"course_fee"`
	CutoffRank int     `json:"cutoff_rank"`
}

func NewAcademicsService(academicsRepo repository.AcademicsRepository) *AcademicsService {
	return &AcademicsService{academicsRepo: academicsRepo}
}

func (s *AcademicsService) List(ctx context.Context) ([]models.Academics, error) {
	return s.academicsRepo.List(ctx)
}

func (s *AcademicsService) Create(ctx context.Context, in CreateAcademicsInput) (*models.Academics, error) {
	if in.CourseID == 0 || in.CollegeID == 0 || in.ExamID == 0 {
		return nil, models.NewValidationError("course_id, college_id, and exam_id are required")
	}
	if in.CourseFee < 0 {
		return nil, models.NewValidationError("Course fee cannot be negative")
	}
	if in.CutoffRank < 1 {
		return nil, models.NewValidationError("Cutoff rank must be at least 1")
	}

	rec := &models.Academics{
		CourseID:   in.CourseID,
		CollegeID:  in.CollegeID,
		ExamID:     in.ExamID,
		CourseFee:  in.CourseFee,
		CutoffRank: in.CutoffRank,
	}
	if err := s.academicsRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *AcademicsService) Delete(ctx context.Context, id uint) error {
	return s.academicsRepo.Delete(ctx, id)
}

func (s *AcademicsService) CollegesOffering(ctx context.Context, courseID uint) ([]models.College, error) {
	return s.academicsRepo.CollegesOffering(ctx, courseID)
}

func (s *AcademicsService) CollegesAndCoursesAccepting(ctx context.Context, examID uint) ([]models.CollegeCourseRef, error) {
	return s.academicsRepo.CollegesAndCoursesAccepting(ctx, examID)
}
