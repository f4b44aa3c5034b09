package server

import (
	"errors"

	"wenda/internal/models"
	"wenda/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/answers/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), answerID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// CreateComment handles POST /api/answers/:id/comments. The legacy comment
// widget expects a bare 201 on success and a {code, msg} body on failure, so
// this endpoint keeps that contract instead of the usual error envelope.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	answerID, parseErr := s.parseID(c, "id")
	if parseErr != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
		ReplyID *uint  `json:"reply_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code": 1,
			"msg":  "Invalid request body",
		})
	}

	_, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:   currentUserID(c),
		AnswerID: answerID,
		Content:  req.Content,
		ReplyID:  req.ReplyID,
	})
	if err != nil {
		msg := "Comment failed"
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code != "INTERNAL_ERROR" {
			msg = appErr.Message
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code": 1,
			"msg":  msg,
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}
