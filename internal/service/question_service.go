package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"wenda/internal/middleware"
	"wenda/internal/models"
	"wenda/internal/repository"
)

const (
	QuestionsPerPage = 5

	minTitleRunes   = 5
	maxTitleRunes   = 50
	maxDescRunes    = 150
	minContentRunes = 5
)

// tagSeparator is the full-width comma users type between tags.
const tagSeparator = "，"

type QuestionService struct {
	questionRepo   repository.QuestionRepository
	answerRepo     repository.AnswerRepository
	commentRepo    repository.CommentRepository
	engagementRepo repository.EngagementRepository
	media          *MediaService
}

type CreateQuestionInput struct {
	UserID      uint
	Title       string
	Description string
	Content     string
	// Tags is the raw client string, full-width comma separated.
	Tags string
	// ImageFilename and ImageContent carry the optional cover image.
	ImageFilename string
	ImageContent  []byte
}

// QuestionDetail is the detail page shape: the question with derived counts
// and tags, plus its first live answer when one exists.
type QuestionDetail struct {
	Question    *models.Question `json:"question"`
	FirstAnswer *models.Answer   `json:"first_answer,omitempty"`
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	commentRepo repository.CommentRepository,
	engagementRepo repository.EngagementRepository,
	media *MediaService,
) *QuestionService {
	return &QuestionService{
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		commentRepo:    commentRepo,
		engagementRepo: engagementRepo,
		media:          media,
	}
}

// CreateQuestion persists a question and its tags in one transaction. The
// cover image, if any, is written to the media store first so a failed insert
// never leaves a question pointing at a missing file.
func (s *QuestionService) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	titleLen := utf8.RuneCountInString(in.Title)
	if titleLen < minTitleRunes || titleLen > maxTitleRunes {
		return nil, models.NewValidationError("Title must be 5 to 50 characters")
	}
	if utf8.RuneCountInString(in.Description) > maxDescRunes {
		return nil, models.NewValidationError("Description must be at most 150 characters")
	}
	if utf8.RuneCountInString(in.Content) < minContentRunes {
		return nil, models.NewValidationError("Content must be at least 5 characters")
	}

	image := ""
	if len(in.ImageContent) > 0 {
		stored, err := s.media.Store(in.ImageFilename, in.ImageContent)
		if err != nil {
			return nil, err
		}
		image = stored
	}

	question := &models.Question{
		Title:       in.Title,
		Description: in.Description,
		Image:       image,
		Content:     in.Content,
		IsValid:     true,
		UserID:      in.UserID,
	}
	if err := s.questionRepo.CreateWithTags(ctx, question, SplitTags(in.Tags)); err != nil {
		return nil, err
	}
	return question, nil
}

// SplitTags turns the raw tag string into tag rows. Tokens are split on the
// full-width comma; empty tokens are dropped silently.
func SplitTags(raw string) []models.QuestionTag {
	var tags []models.QuestionTag
	for _, token := range strings.Split(raw, tagSeparator) {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		tags = append(tags, models.QuestionTag{Name: name, IsValid: true})
	}
	return tags
}

// GetQuestion loads the detail page for a live question and bumps its view
// count. Soft-deleted questions surface as NOT_FOUND.
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*QuestionDetail, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !question.IsValid {
		return nil, models.NewNotFoundError("Question", id)
	}

	if err := s.decorateQuestion(ctx, question); err != nil {
		return nil, err
	}

	first, err := s.answerRepo.FirstByQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	if first != nil {
		if err := s.decorateAnswer(ctx, first); err != nil {
			return nil, err
		}
	}

	// The bump is best effort; a failed write should not break the read.
	if err := s.questionRepo.IncrementViewCount(ctx, id); err != nil {
		if middleware.Logger != nil {
			middleware.Logger.WarnContext(ctx, "Failed to increment view count",
				"question_id", id,
				"error", err,
			)
		}
	} else {
		question.ViewCount++
	}

	return &QuestionDetail{Question: question, FirstAnswer: first}, nil
}

// ListQuestions returns a page of live questions, newest first, each with its
// tags and derived counts.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) ([]models.Question, int64, error) {
	questions, total, err := s.questionRepo.List(ctx, page, QuestionsPerPage)
	if err != nil {
		return nil, 0, err
	}
	for i := range questions {
		if err := s.decorateQuestion(ctx, &questions[i]); err != nil {
			return nil, 0, err
		}
	}
	return questions, total, nil
}

func (s *QuestionService) decorateQuestion(ctx context.Context, question *models.Question) error {
	tags, err := s.questionRepo.TagsByQuestion(ctx, question.ID)
	if err != nil {
		return err
	}
	question.Tags = tags

	if question.AnswerCount, err = s.answerRepo.CountByQuestion(ctx, question.ID); err != nil {
		return err
	}
	if question.CommentCount, err = s.commentRepo.CountByQuestion(ctx, question.ID); err != nil {
		return err
	}
	if question.FollowCount, err = s.engagementRepo.CountFollows(ctx, question.ID); err != nil {
		return err
	}
	if question.CollectCount, err = s.engagementRepo.CountCollects(ctx, question.ID); err != nil {
		return err
	}
	if question.LoveCount, err = s.engagementRepo.CountLovesByQuestion(ctx, question.ID); err != nil {
		return err
	}
	return nil
}

func (s *QuestionService) decorateAnswer(ctx context.Context, answer *models.Answer) error {
	var err error
	if answer.LoveCount, err = s.engagementRepo.CountLoves(ctx, answer.ID); err != nil {
		return err
	}
	if answer.CommentCount, err = s.commentRepo.CountByAnswer(ctx, answer.ID); err != nil {
		return err
	}
	return nil
}
