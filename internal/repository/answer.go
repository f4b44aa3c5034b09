package repository

import (
	"context"
	"errors"

	"wenda/internal/models"

	"gorm.io/gorm"
)

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	// List returns the live answer feed, newest first, with the total live count.
	List(ctx context.Context, page, perPage int) ([]models.Answer, int64, error)
	ListByQuestion(ctx context.Context, questionID uint, page, perPage int) ([]models.Answer, int64, error)
	// FirstByQuestion returns the first live answer for a question, or (nil, nil).
	FirstByQuestion(ctx context.Context, questionID uint) (*models.Answer, error)
	CountByQuestion(ctx context.Context, questionID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository returns a new AnswerRepository implementation.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).Preload("User").First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Answer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

func (r *answerRepository) List(ctx context.Context, page, perPage int) ([]models.Answer, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("is_valid = ?", true), page, perPage)
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uint, page, perPage int) ([]models.Answer, int64, error) {
	scope := r.db.WithContext(ctx).Where("question_id = ? AND is_valid = ?", questionID, true)
	return r.list(ctx, scope, page, perPage)
}

func (r *answerRepository) list(ctx context.Context, scope *gorm.DB, page, perPage int) ([]models.Answer, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := scope.Session(&gorm.Session{}).Model(&models.Answer{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var answers []models.Answer
	if err := scope.Session(&gorm.Session{}).
		Preload("User").
		Preload("Question").
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&answers).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return answers, total, nil
}

func (r *answerRepository) FirstByQuestion(ctx context.Context, questionID uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).Preload("User").
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Order("created_at ASC").
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

func (r *answerRepository) CountByQuestion(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
