package server

import (
	"io"

	"wenda/internal/models"
	"wenda/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetQuestions handles GET /api/questions
func (s *Server) GetQuestions(c *fiber.Ctx) error {
	page := parsePage(c)

	questions, total, err := s.questionService.ListQuestions(c.Context(), page)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"questions": questions,
		"total":     total,
		"page":      page,
		"per_page":  service.QuestionsPerPage,
	})
}

// GetQuestionList handles GET /api/questions/list, serving the legacy
// {code, data} envelope some clients still consume. Those clients key off
// code alone, so failures stay HTTP 200 with code 1.
func (s *Server) GetQuestionList(c *fiber.Ctx) error {
	page := parsePage(c)

	questions, _, err := s.questionService.ListQuestions(c.Context(), page)
	if err != nil {
		return c.JSON(fiber.Map{
			"code": 1,
			"data": []models.Question{},
		})
	}

	return c.JSON(fiber.Map{
		"code": 0,
		"data": questions,
	})
}

// CreateQuestion handles POST /api/questions (multipart, optional image)
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	in := service.CreateQuestionInput{
		UserID:      currentUserID(c),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Content:     c.FormValue("content"),
		Tags:        c.FormValue("tags"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return s.respondError(c, models.NewInternalError(err))
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return s.respondError(c, models.NewInternalError(err))
		}
		in.ImageFilename = file.Filename
		in.ImageContent = content
	}

	question, err := s.questionService.CreateQuestion(c.Context(), in)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetQuestion handles GET /api/questions/:id
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.questionService.GetQuestion(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(detail)
}
