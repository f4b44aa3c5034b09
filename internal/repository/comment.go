package repository

import (
	"context"
	"errors"

	"wenda/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for answer comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.AnswerComment) error
	GetByID(ctx context.Context, id uint) (*models.AnswerComment, error)
	ListByAnswer(ctx context.Context, answerID uint) ([]*models.AnswerComment, error)
	CountByAnswer(ctx context.Context, answerID uint) (int64, error)
	CountByQuestion(ctx context.Context, questionID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.AnswerComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.AnswerComment, error) {
	var comment models.AnswerComment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByAnswer(ctx context.Context, answerID uint) ([]*models.AnswerComment, error) {
	var comments []*models.AnswerComment
	err := r.db.WithContext(ctx).Preload("User").
		Where("answer_id = ? AND is_valid = ? AND is_public = ?", answerID, true, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) CountByAnswer(ctx context.Context, answerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerComment{}).
		Where("answer_id = ? AND is_valid = ?", answerID, true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *commentRepository) CountByQuestion(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerComment{}).
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
