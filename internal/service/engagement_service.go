package service

import (
	"context"

	"wenda/internal/models"
	"wenda/internal/repository"
)

type EngagementService struct {
	engagementRepo repository.EngagementRepository
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
}

func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
	}
}

// LoveAnswer appends a love row unconditionally. Repeated calls from the same
// user accumulate rows and there is no removal path; ToggleLove is the
// idempotent variant.
func (s *EngagementService) LoveAnswer(ctx context.Context, userID, answerID uint) (int64, error) {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return 0, err
	}

	love := &models.AnswerLove{
		UserID:     userID,
		AnswerID:   answer.ID,
		QuestionID: answer.QuestionID,
	}
	if err := s.engagementRepo.CreateLove(ctx, love); err != nil {
		return 0, err
	}
	return s.engagementRepo.CountLoves(ctx, answerID)
}

// ToggleLove creates the user's love row or removes it, returning whether the
// answer is loved afterwards along with the new count.
func (s *EngagementService) ToggleLove(ctx context.Context, userID, answerID uint) (bool, int64, error) {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return false, 0, err
	}

	loved, err := s.engagementRepo.HasLove(ctx, userID, answerID)
	if err != nil {
		return false, 0, err
	}

	if loved {
		if err := s.engagementRepo.DeleteLoves(ctx, userID, answerID); err != nil {
			return false, 0, err
		}
	} else {
		love := &models.AnswerLove{UserID: userID, AnswerID: answer.ID, QuestionID: answer.QuestionID}
		if err := s.engagementRepo.CreateLove(ctx, love); err != nil {
			return false, 0, err
		}
	}

	count, err := s.engagementRepo.CountLoves(ctx, answerID)
	if err != nil {
		return false, 0, err
	}
	return !loved, count, nil
}

// ToggleCollect creates the user's collect row or flips its validity,
// returning whether the answer is collected afterwards.
func (s *EngagementService) ToggleCollect(ctx context.Context, userID, answerID uint) (bool, error) {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return false, err
	}

	collect, err := s.engagementRepo.GetCollect(ctx, userID, answerID)
	if err != nil {
		return false, err
	}

	if collect == nil {
		collect = &models.AnswerCollect{
			IsValid:    true,
			UserID:     userID,
			AnswerID:   answer.ID,
			QuestionID: answer.QuestionID,
		}
		if err := s.engagementRepo.CreateCollect(ctx, collect); err != nil {
			return false, err
		}
		return true, nil
	}

	collect.IsValid = !collect.IsValid
	if err := s.engagementRepo.UpdateCollect(ctx, collect); err != nil {
		return false, err
	}
	return collect.IsValid, nil
}

// ToggleFollow creates the user's follow row on a question or flips its
// validity, returning whether the question is followed afterwards.
func (s *EngagementService) ToggleFollow(ctx context.Context, userID, questionID uint) (bool, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return false, err
	}
	if !question.IsValid {
		return false, models.NewNotFoundError("Question", questionID)
	}

	follow, err := s.engagementRepo.GetFollow(ctx, userID, questionID)
	if err != nil {
		return false, err
	}

	if follow == nil {
		follow = &models.QuestionFollow{
			IsValid:    true,
			UserID:     userID,
			QuestionID: questionID,
		}
		if err := s.engagementRepo.CreateFollow(ctx, follow); err != nil {
			return false, err
		}
		return true, nil
	}

	follow.IsValid = !follow.IsValid
	if err := s.engagementRepo.UpdateFollow(ctx, follow); err != nil {
		return false, err
	}
	return follow.IsValid, nil
}

func (s *EngagementService) CountLoves(ctx context.Context, answerID uint) (int64, error) {
	return s.engagementRepo.CountLoves(ctx, answerID)
}

func (s *EngagementService) CountCollects(ctx context.Context, questionID uint) (int64, error) {
	return s.engagementRepo.CountCollects(ctx, questionID)
}

func (s *EngagementService) CountFollows(ctx context.Context, questionID uint) (int64, error) {
	return s.engagementRepo.CountFollows(ctx, questionID)
}
