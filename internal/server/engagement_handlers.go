package server

import (
	"github.com/gofiber/fiber/v2"
)

// LoveAnswer handles POST /api/answers/:id/love. Each call appends a love
// row; the count only ever grows on this route.
func (s *Server) LoveAnswer(c *fiber.Ctx) error {
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, svcErr := s.engagementService.LoveAnswer(c.Context(), currentUserID(c), answerID)
	if svcErr != nil {
		return s.respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"love_count": count,
	})
}

// ToggleLove handles POST /api/answers/:id/love/toggle
func (s *Server) ToggleLove(c *fiber.Ctx) error {
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	loved, count, svcErr := s.engagementService.ToggleLove(c.Context(), currentUserID(c), answerID)
	if svcErr != nil {
		return s.respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"loved":      loved,
		"love_count": count,
	})
}

// ToggleCollect handles POST /api/answers/:id/collect
func (s *Server) ToggleCollect(c *fiber.Ctx) error {
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	collected, svcErr := s.engagementService.ToggleCollect(c.Context(), currentUserID(c), answerID)
	if svcErr != nil {
		return s.respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"collected": collected,
	})
}

// ToggleFollow handles POST /api/questions/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, svcErr := s.engagementService.ToggleFollow(c.Context(), currentUserID(c), questionID)
	if svcErr != nil {
		return s.respondError(c, svcErr)
	}

	followCount, svcErr := s.engagementService.CountFollows(c.Context(), questionID)
	if svcErr != nil {
		return s.respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"following":    following,
		"follow_count": followCount,
	})
}
