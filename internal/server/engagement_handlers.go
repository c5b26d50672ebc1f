package server

import (
	"academicworld/internal/models"
	"academicworld/internal/repository"
	"academicworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mountEngagementRoutes registers the discussion, bookmark, like and ranking
// routes for one catalog entity group. A free function because Go methods
// cannot take type parameters; one instantiation per entity kind serves all
// three groups.
//
// Literal segments (/ranking, /bookmarks) are registered here so the caller
// can add the generic /:id routes afterwards without shadowing them.
func mountEngagementRoutes[T models.CatalogEntity, P repository.Authored, B any, L any](
	s *Server,
	grp fiber.Router,
	svc *service.EngagementService[T, P, B, L],
) {
	auth := s.AuthRequired()

	grp.Get("/ranking", func(c *fiber.Ctx) error {
		ranked, err := svc.Ranking(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ranked)
	})

	grp.Get("/bookmarks/public", func(c *fiber.Ctx) error {
		bookmarks, err := svc.ListPublicBookmarks(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(bookmarks)
	})

	grp.Get("/bookmarks", auth, func(c *fiber.Ctx) error {
		bookmarks, err := svc.ListBookmarks(c.Context(), currentUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(bookmarks)
	})

	grp.Get("/:id/posts", func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		posts, err := svc.ListPosts(c.Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(posts)
	})

	grp.Post("/:id/posts", auth, func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		var req struct {
			Title     string `json:"title"`
			Body      string `json:"body"`
			ReplyToID *uint  `json:"reply_to_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		post, err := svc.AddPost(c.Context(), service.AddPostInput{
			ParentID:  id,
			UserID:    currentUserID(c),
			Title:     req.Title,
			Body:      req.Body,
			ReplyToID: req.ReplyToID,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	grp.Delete("/:id/posts/:postId", auth, func(c *fiber.Ctx) error {
		postID, err := parseID(c, "postId")
		if err != nil {
			return nil
		}
		err = svc.DeletePost(c.Context(), service.DeletePostInput{
			PostID:  postID,
			UserID:  currentUserID(c),
			IsAdmin: currentIsAdmin(c),
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Post deleted"})
	})

	grp.Post("/:id/bookmarks", auth, func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		var req struct {
			Visibility string `json:"visibility"`
		}
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		bookmark, err := svc.AddBookmark(c.Context(), service.AddBookmarkInput{
			ParentID:   id,
			UserID:     currentUserID(c),
			Visibility: req.Visibility,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(bookmark)
	})

	grp.Delete("/:id/bookmarks", auth, func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		if err := svc.RemoveBookmark(c.Context(), currentUserID(c), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Bookmark removed"})
	})

	grp.Post("/:id/like", auth, func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		entity, err := svc.Like(c.Context(), currentUserID(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(entity)
	})
}
