package server

import (
	"academicworld/internal/models"
	"academicworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAcademics handles GET /api/academics
func (s *Server) GetAcademics(c *fiber.Ctx) error {
	recs, err := s.academicsService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recs)
}

// CreateAcademics handles POST /api/academics (admin only)
func (s *Server) CreateAcademics(c *fiber.Ctx) error {
	var req service.CreateAcademicsInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	rec, err := s.academicsService.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// DeleteAcademics handles DELETE /api/academics/:id (admin only)
func (s *Server) DeleteAcademics(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.academicsService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Admission record deleted"})
}

// GetCollegesOffering handles GET /api/academics/colleges-offering?course_id=N
func (s *Server) GetCollegesOffering(c *fiber.Ctx) error {
	courseID := c.QueryInt("course_id")
	if courseID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("course_id query parameter is required"))
	}
	colleges, err := s.academicsService.CollegesOffering(c.Context(), uint(courseID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(colleges)
}

// GetAccepting handles GET /api/academics/accepting?exam_id=N
func (s *Server) GetAccepting(c *fiber.Ctx) error {
	examID := c.QueryInt("exam_id")
	if examID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("exam_id query parameter is required"))
	}
	refs, err := s.academicsService.CollegesAndCoursesAccepting(c.Context(), uint(examID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(refs)
}
