package service

import (
	"context"
	"errors"
	"testing"

	"wenda/internal/models"

	"github.com/stretchr/testify/require"
)

// Hand-written stubs for the repository interfaces. Each field defaults to a
// benign no-op; tests override only what they exercise.

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	createWithProfileFn func(context.Context, *models.User, *models.UserProfile) error
	updateFn            func(context.Context, *models.User) error
	recordLoginFn       func(context.Context, *models.UserLoginHistory) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error {
	return s.createWithProfileFn(ctx, user, profile)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) RecordLogin(ctx context.Context, entry *models.UserLoginHistory) error {
	return s.recordLoginFn(ctx, entry)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createWithProfileFn: func(_ context.Context, u *models.User, p *models.UserProfile) error {
			u.ID = 1
			p.UserID = u.ID
			return nil
		},
		updateFn:      func(_ context.Context, _ *models.User) error { return nil },
		recordLoginFn: func(_ context.Context, _ *models.UserLoginHistory) error { return nil },
	}
}

type questionRepoStub struct {
	createWithTagsFn     func(context.Context, *models.Question, []models.QuestionTag) error
	getByIDFn            func(context.Context, uint) (*models.Question, error)
	listFn               func(context.Context, int, int) ([]models.Question, int64, error)
	tagsByQuestionFn     func(context.Context, uint) ([]models.QuestionTag, error)
	incrementViewCountFn func(context.Context, uint) error
}

func (s *questionRepoStub) CreateWithTags(ctx context.Context, q *models.Question, tags []models.QuestionTag) error {
	return s.createWithTagsFn(ctx, q, tags)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) List(ctx context.Context, page, perPage int) ([]models.Question, int64, error) {
	return s.listFn(ctx, page, perPage)
}
func (s *questionRepoStub) TagsByQuestion(ctx context.Context, questionID uint) ([]models.QuestionTag, error) {
	return s.tagsByQuestionFn(ctx, questionID)
}
func (s *questionRepoStub) IncrementViewCount(ctx context.Context, id uint) error {
	return s.incrementViewCountFn(ctx, id)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createWithTagsFn: func(_ context.Context, q *models.Question, tags []models.QuestionTag) error {
			q.ID = 1
			q.Tags = tags
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, IsValid: true}, nil
		},
		listFn:               func(_ context.Context, _, _ int) ([]models.Question, int64, error) { return nil, 0, nil },
		tagsByQuestionFn:     func(_ context.Context, _ uint) ([]models.QuestionTag, error) { return nil, nil },
		incrementViewCountFn: func(_ context.Context, _ uint) error { return nil },
	}
}

type answerRepoStub struct {
	createFn          func(context.Context, *models.Answer) error
	getByIDFn         func(context.Context, uint) (*models.Answer, error)
	listFn            func(context.Context, int, int) ([]models.Answer, int64, error)
	listByQuestionFn  func(context.Context, uint, int, int) ([]models.Answer, int64, error)
	firstByQuestionFn func(context.Context, uint) (*models.Answer, error)
	countByQuestionFn func(context.Context, uint) (int64, error)
}

func (s *answerRepoStub) Create(ctx context.Context, answer *models.Answer) error {
	return s.createFn(ctx, answer)
}
func (s *answerRepoStub) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *answerRepoStub) List(ctx context.Context, page, perPage int) ([]models.Answer, int64, error) {
	return s.listFn(ctx, page, perPage)
}
func (s *answerRepoStub) ListByQuestion(ctx context.Context, questionID uint, page, perPage int) ([]models.Answer, int64, error) {
	return s.listByQuestionFn(ctx, questionID, page, perPage)
}
func (s *answerRepoStub) FirstByQuestion(ctx context.Context, questionID uint) (*models.Answer, error) {
	return s.firstByQuestionFn(ctx, questionID)
}
func (s *answerRepoStub) CountByQuestion(ctx context.Context, questionID uint) (int64, error) {
	return s.countByQuestionFn(ctx, questionID)
}

func noopAnswerRepo() *answerRepoStub {
	return &answerRepoStub{
		createFn: func(_ context.Context, a *models.Answer) error {
			a.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Answer, error) {
			return &models.Answer{ID: id, QuestionID: 1, IsValid: true}, nil
		},
		listFn: func(_ context.Context, _, _ int) ([]models.Answer, int64, error) { return nil, 0, nil },
		listByQuestionFn: func(_ context.Context, _ uint, _, _ int) ([]models.Answer, int64, error) {
			return nil, 0, nil
		},
		firstByQuestionFn: func(_ context.Context, _ uint) (*models.Answer, error) { return nil, nil },
		countByQuestionFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn          func(context.Context, *models.AnswerComment) error
	getByIDFn         func(context.Context, uint) (*models.AnswerComment, error)
	listByAnswerFn    func(context.Context, uint) ([]*models.AnswerComment, error)
	countByAnswerFn   func(context.Context, uint) (int64, error)
	countByQuestionFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.AnswerComment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.AnswerComment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByAnswer(ctx context.Context, answerID uint) ([]*models.AnswerComment, error) {
	return s.listByAnswerFn(ctx, answerID)
}
func (s *commentRepoStub) CountByAnswer(ctx context.Context, answerID uint) (int64, error) {
	return s.countByAnswerFn(ctx, answerID)
}
func (s *commentRepoStub) CountByQuestion(ctx context.Context, questionID uint) (int64, error) {
	return s.countByQuestionFn(ctx, questionID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.AnswerComment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.AnswerComment, error) {
			return &models.AnswerComment{ID: id, AnswerID: 1}, nil
		},
		listByAnswerFn:    func(_ context.Context, _ uint) ([]*models.AnswerComment, error) { return nil, nil },
		countByAnswerFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countByQuestionFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

type engagementRepoStub struct {
	createLoveFn           func(context.Context, *models.AnswerLove) error
	hasLoveFn              func(context.Context, uint, uint) (bool, error)
	deleteLovesFn          func(context.Context, uint, uint) error
	countLovesFn           func(context.Context, uint) (int64, error)
	countLovesByQuestionFn func(context.Context, uint) (int64, error)
	getCollectFn           func(context.Context, uint, uint) (*models.AnswerCollect, error)
	createCollectFn        func(context.Context, *models.AnswerCollect) error
	updateCollectFn        func(context.Context, *models.AnswerCollect) error
	countCollectsFn        func(context.Context, uint) (int64, error)
	getFollowFn            func(context.Context, uint, uint) (*models.QuestionFollow, error)
	createFollowFn         func(context.Context, *models.QuestionFollow) error
	updateFollowFn         func(context.Context, *models.QuestionFollow) error
	countFollowsFn         func(context.Context, uint) (int64, error)
}

func (s *engagementRepoStub) CreateLove(ctx context.Context, love *models.AnswerLove) error {
	return s.createLoveFn(ctx, love)
}
func (s *engagementRepoStub) HasLove(ctx context.Context, userID, answerID uint) (bool, error) {
	return s.hasLoveFn(ctx, userID, answerID)
}
func (s *engagementRepoStub) DeleteLoves(ctx context.Context, userID, answerID uint) error {
	return s.deleteLovesFn(ctx, userID, answerID)
}
func (s *engagementRepoStub) CountLoves(ctx context.Context, answerID uint) (int64, error) {
	return s.countLovesFn(ctx, answerID)
}
func (s *engagementRepoStub) CountLovesByQuestion(ctx context.Context, questionID uint) (int64, error) {
	return s.countLovesByQuestionFn(ctx, questionID)
}
func (s *engagementRepoStub) GetCollect(ctx context.Context, userID, answerID uint) (*models.AnswerCollect, error) {
	return s.getCollectFn(ctx, userID, answerID)
}
func (s *engagementRepoStub) CreateCollect(ctx context.Context, collect *models.AnswerCollect) error {
	return s.createCollectFn(ctx, collect)
}
func (s *engagementRepoStub) UpdateCollect(ctx context.Context, collect *models.AnswerCollect) error {
	return s.updateCollectFn(ctx, collect)
}
func (s *engagementRepoStub) CountCollects(ctx context.Context, questionID uint) (int64, error) {
	return s.countCollectsFn(ctx, questionID)
}
func (s *engagementRepoStub) GetFollow(ctx context.Context, userID, questionID uint) (*models.QuestionFollow, error) {
	return s.getFollowFn(ctx, userID, questionID)
}
func (s *engagementRepoStub) CreateFollow(ctx context.Context, follow *models.QuestionFollow) error {
	return s.createFollowFn(ctx, follow)
}
func (s *engagementRepoStub) UpdateFollow(ctx context.Context, follow *models.QuestionFollow) error {
	return s.updateFollowFn(ctx, follow)
}
func (s *engagementRepoStub) CountFollows(ctx context.Context, questionID uint) (int64, error) {
	return s.countFollowsFn(ctx, questionID)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		createLoveFn:           func(_ context.Context, _ *models.AnswerLove) error { return nil },
		hasLoveFn:              func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		deleteLovesFn:          func(_ context.Context, _, _ uint) error { return nil },
		countLovesFn:           func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countLovesByQuestionFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		getCollectFn:           func(_ context.Context, _, _ uint) (*models.AnswerCollect, error) { return nil, nil },
		createCollectFn:        func(_ context.Context, _ *models.AnswerCollect) error { return nil },
		updateCollectFn:        func(_ context.Context, _ *models.AnswerCollect) error { return nil },
		countCollectsFn:        func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		getFollowFn:            func(_ context.Context, _, _ uint) (*models.QuestionFollow, error) { return nil, nil },
		createFollowFn:         func(_ context.Context, _ *models.QuestionFollow) error { return nil },
		updateFollowFn:         func(_ context.Context, _ *models.QuestionFollow) error { return nil },
		countFollowsFn:         func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}

var errBoom = errors.New("boom")
