package service

import (
	"context"

	"academicworld/internal/models"
	"academicworld/internal/repository"
)

// CatalogService handles creation, partial update and lookup for the three
// catalog entities. Reads and deletes share the generic repository; creates
// and patches are typed per entity because their fields differ.
type CatalogService struct {
	courses  repository.CatalogRepository[models.Course]
	colleges repository.CatalogRepository[models.College]
	exams    repository.CatalogRepository[models.Exam]
}

func NewCatalogService(
	courses repository.CatalogRepository[models.Course],
	colleges repository.CatalogRepository[models.College],
	exams repository.CatalogRepository[models.Exam],
) *CatalogService {
	return &CatalogService{courses: courses, colleges: colleges, exams: exams}
}

type CreateCourseInput struct {
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	Eligibility string `json:"eligibility"`
}

// CoursePatch enumerates the updatable course fields. Nil means "leave alone";
// only named fields ever reach the UPDATE, so a client cannot touch likes or
// timestamps through this path.
type CoursePatch struct {
	Name        *string `json:"name"`
	Duration    *int    `json:"duration"`
	Type        *string `json:"type"`
	Eligibility *string `json:"eligibility"`
}

type CreateCollegeInput struct {
	Name    string `json:"name"`
	Rank    int    `json:"rank"`
	Email   string `json:"email"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Address string `json:"address"`
}

type CollegePatch struct {
	Name    *string `json:"name"`
	Rank    *int    `json:"rank"`
	Email   *string `json:"email"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Address *string `json:"address"`
}

type CreateExamInput struct {
	Name        string  `json:"name"`
	Eligibility string  `json:"eligibility"`
	Syllabus    string  `json:"syllabus"`
	Fee         float64 `json:"fee"`
}

type ExamPatch struct {
	Name        *string  `json:"name"`
	Eligibility *string  `json:"eligibility"`
	Syllabus    *string  `json:"syllabus"`
	Fee         *float64 `json:"fee"`
}

func validCourseType(t string) bool {
	switch t {
	case models.CourseTypeUG, models.CourseTypePG, models.CourseTypeIntegrated:
		return true
	}
	return false
}

func (s *CatalogService) CreateCourse(ctx context.Context, in CreateCourseInput) (*models.Course, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Duration < 1 {
		return nil, models.NewValidationError("Duration must be at least 1")
	}
	if !validCourseType(in.Type) {
		return nil, models.NewValidationError("Type must be one of UG, PG, Integrated")
	}
	course := &models.Course{
		Name:        in.Name,
		Duration:    in.Duration,
		Type:        in.Type,
		Eligibility: in.Eligibility,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id uint, patch CoursePatch) (*models.Course, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Duration != nil {
		if *patch.Duration < 1 {
			return nil, models.NewValidationError("Duration must be at least 1")
		}
		fields["duration"] = *patch.Duration
	}
	if patch.Type != nil {
		if !validCourseType(*patch.Type) {
			return nil, models.NewValidationError("Type must be one of UG, PG, Integrated")
		}
		fields["type"] = *patch.Type
	}
	if patch.Eligibility != nil {
		fields["eligibility"] = *patch.Eligibility
	}
	if err := s.courses.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

func (s *CatalogService) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id uint) error {
	return s.courses.Delete(ctx, id)
}

func (s *CatalogService) CreateCollege(ctx context.Context, in CreateCollegeInput) (*models.College, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Rank < 1 {
		return nil, models.NewValidationError("Rank must be at least 1")
	}
	college := &models.College{
		Name:    in.Name,
		Rank:    in.Rank,
		Email:   in.Email,
		City:    in.City,
		State:   in.State,
		Country: in.Country,
		Address: in.Address,
	}
	if err := s.colleges.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (s *CatalogService) UpdateCollege(ctx context.Context, id uint, patch CollegePatch) (*models.College, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Rank != nil {
		if *patch.Rank < 1 {
			return nil, models.NewValidationError("Rank must be at least 1")
		}
		fields["rank"] = *patch.Rank
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.City != nil {
		fields["city"] = *patch.City
	}
	if patch.State != nil {
		fields["state"] = *patch.State
	}
	if patch.Country != nil {
		fields["country"] = *patch.Country
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if err := s.colleges.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.colleges.GetByID(ctx, id)
}

func (s *CatalogService) ListColleges(ctx context.Context) ([]models.College, error) {
	return s.colleges.List(ctx)
}

func (s *CatalogService) GetCollege(ctx context.Context, id uint) (*models.College, error) {
	return s.colleges.GetByID(ctx, id)
}

func (s *CatalogService) DeleteCollege(ctx context.Context, id uint) error {
	return s.colleges.Delete(ctx, id)
}

func (s *CatalogService) CreateExam(ctx context.Context, in CreateExamInput) (*models.Exam, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Fee < 0 {
		return nil, models.NewValidationError("Fee cannot be negative")
	}
	exam := &models.Exam{
		Name:        in.Name,
		Eligibility: in.Eligibility,
		Syllabus:    in.Syllabus,
		Fee:         in.Fee,
	}
	if err := s.exams.Create(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *CatalogService) UpdateExam(ctx context.Context, id uint, patch ExamPatch) (*models.Exam, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Eligibility != nil {
		fields["eligibility"] = *patch.Eligibility
	}
	if patch.Syllabus != nil {
		fields["syllabus"] = *patch.Syllabus
	}
	if patch.Fee != nil {
		if *patch.Fee < 0 {
			return nil, models.NewValidationError("Fee cannot be negative")
		}
		fields["fee"] = *patch.Fee
	}
	if err := s.exams.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.exams.GetByID(ctx, id)
}

func (s *CatalogService) ListExams(ctx context.Context) ([]models.Exam, error) {
	return s.exams.List(ctx)
}

func (s *CatalogService) GetExam(ctx context.Context, id uint) (*models.Exam, error) {
	return s.exams.GetByID(ctx, id)
}

func (s *CatalogService) DeleteExam(ctx context.Context, id uint) error {
	return s.exams.Delete(ctx, id)
}
