package server

import (
	"wenda/internal/models"
	"wenda/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAnswers handles GET /api/answers, the front-page feed.
func (s *Server) GetAnswers(c *fiber.Ctx) error {
	page := parsePage(c)

	answers, total, err := s.answerService.ListAnswers(c.Context(), page)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"answers":  answers,
		"total":    total,
		"page":     page,
		"per_page": service.AnswersPerPage,
	})
}

// CreateAnswer handles POST /api/questions/:id/answers
func (s *Server) CreateAnswer(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.answerService.CreateAnswer(c.Context(), service.CreateAnswerInput{
		UserID:     currentUserID(c),
		QuestionID: questionID,
		Content:    req.Content,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}
