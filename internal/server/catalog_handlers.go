package server

import (
	"academicworld/internal/models"
	"academicworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Catalog CRUD. Creation and partial update are typed per entity; the patch
// bodies only carry fields the client named, so likes and timestamps stay out
// of reach.

// CreateCourse handles POST /api/courses (admin only)
func (s *Server) CreateCourse(c *fiber.Ctx) error {
	var req service.CreateCourseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	course, err := s.catalogService.CreateCourse(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// GetCourses handles GET /api/courses
func (s *Server) GetCourses(c *fiber.Ctx) error {
	courses, err := s.catalogService.ListCourses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

// GetCourse handles GET /api/courses/:id
func (s *Server) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	course, err := s.catalogService.GetCourse(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(course)
}

// UpdateCourse handles PATCH /api/courses/:id (admin only)
func (s *Server) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var patch service.CoursePatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	course, err := s.catalogService.UpdateCourse(c.Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(course)
}

// DeleteCourse handles DELETE /api/courses/:id (admin only)
func (s *Server) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.catalogService.DeleteCourse(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}

// CreateCollege handles POST /api/colleges (admin only)
func (s *Server) CreateCollege(c *fiber.Ctx) error {
	var req service.CreateCollegeInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	college, err := s.catalogService.CreateCollege(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(college)
}

// GetColleges handles GET /api/colleges
func (s *Server) GetColleges(c *fiber.Ctx) error {
	colleges, err := s.catalogService.ListColleges(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(colleges)
}

// GetCollege handles GET /api/colleges/:id
func (s *Server) GetCollege(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	college, err := s.catalogService.GetCollege(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(college)
}

// UpdateCollege handles PATCH /api/colleges/:id (admin only)
func (s *Server) UpdateCollege(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var patch service.CollegePatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	college, err := s.catalogService.UpdateCollege(c.Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(college)
}

// DeleteCollege handles DELETE /api/colleges/:id (admin only)
func (s *Server) DeleteCollege(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.catalogService.DeleteCollege(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "College deleted"})
}

// CreateExam handles POST /api/exams (admin only)
func (s *Server) CreateExam(c *fiber.Ctx) error {
	var req service.CreateExamInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	exam, err := s.catalogService.CreateExam(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exam)
}

// GetExams handles GET /api/exams
func (s *Server) GetExams(c *fiber.Ctx) error {
	exams, err := s.catalogService.ListExams(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exams)
}

// GetExam handles GET /api/exams/:id
func (s *Server) GetExam(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	exam, err := s.catalogService.GetExam(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exam)
}

// UpdateExam handles PATCH /api/exams/:id (admin only)
func (s *Server) UpdateExam(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var patch service.ExamPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	exam, err := s.catalogService.UpdateExam(c.Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exam)
}

// DeleteExam handles DELETE /api/exams/:id (admin only)
func (s *Server) DeleteExam(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.catalogService.DeleteExam(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exam deleted"})
}
