package service

import (
	"context"
	"unicode/utf8"

	"wenda/internal/models"
	"wenda/internal/repository"
)

const AnswersPerPage = 10

type AnswerService struct {
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	commentRepo    repository.CommentRepository
	engagementRepo repository.EngagementRepository
}

type CreateAnswerInput struct {
	UserID     uint
	QuestionID uint
	Content    string
}

func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	commentRepo repository.CommentRepository,
	engagementRepo repository.EngagementRepository,
) *AnswerService {
	return &AnswerService{
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		commentRepo:    commentRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *AnswerService) CreateAnswer(ctx context.Context, in CreateAnswerInput) (*models.Answer, error) {
	if utf8.RuneCountInString(in.Content) < minContentRunes {
		return nil, models.NewValidationError("Content must be at least 5 characters")
	}

	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
	}
	if !question.IsValid {
		return nil, models.NewNotFoundError("Question", in.QuestionID)
	}

	answer := &models.Answer{
		Content:    in.Content,
		IsValid:    true,
		UserID:     in.UserID,
		QuestionID: in.QuestionID,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answer.ID)
}

// ListAnswers is the front-page feed: live answers across all questions,
// newest first, with derived love and comment counts.
func (s *AnswerService) ListAnswers(ctx context.Context, page int) ([]models.Answer, int64, error) {
	answers, total, err := s.answerRepo.List(ctx, page, AnswersPerPage)
	if err != nil {
		return nil, 0, err
	}
	if err := s.decorate(ctx, answers); err != nil {
		return nil, 0, err
	}
	return answers, total, nil
}

func (s *AnswerService) ListAnswersByQuestion(ctx context.Context, questionID uint, page int) ([]models.Answer, int64, error) {
	answers, total, err := s.answerRepo.ListByQuestion(ctx, questionID, page, AnswersPerPage)
	if err != nil {
		return nil, 0, err
	}
	if err := s.decorate(ctx, answers); err != nil {
		return nil, 0, err
	}
	return answers, total, nil
}

func (s *AnswerService) decorate(ctx context.Context, answers []models.Answer) error {
	for i := range answers {
		loves, err := s.engagementRepo.CountLoves(ctx, answers[i].ID)
		if err != nil {
			return err
		}
		answers[i].LoveCount = loves

		comments, err := s.commentRepo.CountByAnswer(ctx, answers[i].ID)
		if err != nil {
			return err
		}
		answers[i].CommentCount = comments
	}
	return nil
}
