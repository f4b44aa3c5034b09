package service

import (
	"context"
	"testing"

	"wenda/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerService_CreateAnswer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("4-rune content fails", func(t *testing.T) {
		t.Parallel()
		created := false
		answerRepo := noopAnswerRepo()
		answerRepo.createFn = func(_ context.Context, _ *models.Answer) error {
			created = true
			return nil
		}
		svc := NewAnswerService(answerRepo, noopQuestionRepo(), noopCommentRepo(), noopEngagementRepo())

		_, err := svc.CreateAnswer(ctx, CreateAnswerInput{UserID: 1, QuestionID: 1, Content: "四个字了"})
		assertValidationError(t, err)
		assert.False(t, created)
	})

	t.Run("5-rune content succeeds", func(t *testing.T) {
		t.Parallel()
		answerRepo := noopAnswerRepo()
		answerRepo.createFn = func(_ context.Context, a *models.Answer) error {
			a.ID = 4
			return nil
		}
		answerRepo.getByIDFn = func(_ context.Context, id uint) (*models.Answer, error) {
			return &models.Answer{ID: id, Content: "五个字内容", UserID: 1, QuestionID: 1, IsValid: true}, nil
		}
		svc := NewAnswerService(answerRepo, noopQuestionRepo(), noopCommentRepo(), noopEngagementRepo())

		answer, err := svc.CreateAnswer(ctx, CreateAnswerInput{UserID: 1, QuestionID: 1, Content: "五个字内容"})
		require.NoError(t, err)
		assert.Equal(t, uint(4), answer.ID)
		assert.True(t, answer.IsValid)
	})

	t.Run("soft-deleted question rejects answers", func(t *testing.T) {
		t.Parallel()
		questionRepo := noopQuestionRepo()
		questionRepo.getByIDFn = func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, IsValid: false}, nil
		}
		svc := NewAnswerService(noopAnswerRepo(), questionRepo, noopCommentRepo(), noopEngagementRepo())

		_, err := svc.CreateAnswer(ctx, CreateAnswerInput{UserID: 1, QuestionID: 1, Content: "五个字内容"})
		assertErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("missing question propagates", func(t *testing.T) {
		t.Parallel()
		questionRepo := noopQuestionRepo()
		questionRepo.getByIDFn = func(_ context.Context, id uint) (*models.Question, error) {
			return nil, models.NewNotFoundError("Question", id)
		}
		svc := NewAnswerService(noopAnswerRepo(), questionRepo, noopCommentRepo(), noopEngagementRepo())

		_, err := svc.CreateAnswer(ctx, CreateAnswerInput{UserID: 1, QuestionID: 99, Content: "五个字内容"})
		assertErrorCode(t, err, "NOT_FOUND")
	})
}

func TestAnswerService_ListAnswers(t *testing.T) {
	t.Parallel()

	answerRepo := noopAnswerRepo()
	answerRepo.listFn = func(_ context.Context, page, perPage int) ([]models.Answer, int64, error) {
		assert.Equal(t, AnswersPerPage, perPage)
		return []models.Answer{{ID: 1}, {ID: 2}}, 12, nil
	}

	engagementRepo := noopEngagementRepo()
	engagementRepo.countLovesFn = func(_ context.Context, answerID uint) (int64, error) {
		return int64(answerID), nil
	}
	commentRepo := noopCommentRepo()
	commentRepo.countByAnswerFn = func(_ context.Context, answerID uint) (int64, error) {
		return int64(answerID * 2), nil
	}

	svc := NewAnswerService(answerRepo, noopQuestionRepo(), commentRepo, engagementRepo)
	answers, total, err := svc.ListAnswers(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, answers, 2)
	assert.Equal(t, int64(1), answers[0].LoveCount)
	assert.Equal(t, int64(2), answers[0].CommentCount)
	assert.Equal(t, int64(2), answers[1].LoveCount)
	assert.Equal(t, int64(4), answers[1].CommentCount)
}
