package service

import (
	"context"
	"strings"

	"wenda/internal/models"
	"wenda/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	answerRepo  repository.AnswerRepository
}

type CreateCommentInput struct {
	UserID   uint
	AnswerID uint
	Content  string
	// ReplyID optionally points at an earlier comment on the same answer.
	ReplyID *uint
}

func NewCommentService(commentRepo repository.CommentRepository, answerRepo repository.AnswerRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, answerRepo: answerRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.AnswerComment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	answer, err := s.answerRepo.GetByID(ctx, in.AnswerID)
	if err != nil {
		return nil, err
	}

	if in.ReplyID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ReplyID)
		if err != nil {
			return nil, err
		}
		if parent.AnswerID != answer.ID {
			return nil, models.NewValidationError("Reply target is on a different answer")
		}
	}

	comment := &models.AnswerComment{
		Content:    in.Content,
		IsPublic:   true,
		IsValid:    true,
		ReplyID:    in.ReplyID,
		UserID:     in.UserID,
		AnswerID:   in.AnswerID,
		QuestionID: answer.QuestionID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the public live comments on an answer, newest first.
func (s *CommentService) ListComments(ctx context.Context, answerID uint) ([]*models.AnswerComment, error) {
	if _, err := s.answerRepo.GetByID(ctx, answerID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByAnswer(ctx, answerID)
}
