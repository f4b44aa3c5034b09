package repository

import (
	"context"
	"errors"

	"wenda/internal/cache"
	"wenda/internal/models"

	"gorm.io/gorm"
)

// QuestionRepository defines persistence operations for questions and their tags.
type QuestionRepository interface {
	// CreateWithTags inserts the question and its tag rows in one transaction.
	CreateWithTags(ctx context.Context, question *models.Question, tags []models.QuestionTag) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	// List returns live questions, newest first, with the total live count.
	List(ctx context.Context, page, perPage int) ([]models.Question, int64, error)
	TagsByQuestion(ctx context.Context, questionID uint) ([]models.QuestionTag, error)
	IncrementViewCount(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository returns a new QuestionRepository implementation.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateWithTags(ctx context.Context, question *models.Question, tags []models.QuestionTag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range tags {
			tags[i].QuestionID = question.ID
			if err := tx.Create(&tags[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	question.Tags = tags
	return nil
}

// questionCacheEntry is the cached form of a question. The API JSON shape
// hides IsValid and Reorder, so the entry carries them alongside the row;
// without that, a cache hit would rehydrate every live question as invalid.
type questionCacheEntry struct {
	Question models.Question `json:"question"`
	IsValid  bool            `json:"is_valid"`
	Reorder  int             `json:"reorder"`
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var entry questionCacheEntry
	key := cache.QuestionKey(id)

	err := cache.Aside(ctx, key, &entry, cache.QuestionTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("User").First(&entry.Question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Question", id)
			}
			return models.NewInternalError(err)
		}
		entry.IsValid = entry.Question.IsValid
		entry.Reorder = entry.Question.Reorder
		return nil
	})

	if err != nil {
		return nil, err
	}

	question := entry.Question
	question.IsValid = entry.IsValid
	question.Reorder = entry.Reorder
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, page, perPage int) ([]models.Question, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("is_valid = ?", true).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var questions []models.Question
	if err := r.db.WithContext(ctx).Preload("User").
		Where("is_valid = ?", true).
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&questions).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return questions, total, nil
}

func (r *questionRepository) TagsByQuestion(ctx context.Context, questionID uint) ([]models.QuestionTag, error) {
	var tags []models.QuestionTag
	if err := r.db.WithContext(ctx).
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *questionRepository) IncrementViewCount(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateQuestion(ctx, id)
	return nil
}
