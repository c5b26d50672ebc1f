package server

import (
	"academicworld/internal/models"
	"academicworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetAllUsers handles GET /api/users (admin only)
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// DeleteUser handles DELETE /api/users/:identifier (admin only).
// The identifier is a username or email; self-service account deletion is
// deliberately not offered.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	if identifier == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Identifier is required"))
	}

	err := s.userService.DeleteUser(c.Context(), service.DeleteUserInput{
		Identifier:    identifier,
		CallerIsAdmin: currentIsAdmin(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
