package repository

import (
	"context"
	"errors"

	"wenda/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository defines persistence operations for loves, collects and
// follows. Love rows are append-only (no validity flag); collect and follow
// rows toggle off by flipping IsValid.
type EngagementRepository interface {
	CreateLove(ctx context.Context, love *models.AnswerLove) error
	HasLove(ctx context.Context, userID, answerID uint) (bool, error)
	// DeleteLoves removes a user's love rows for an answer. Only the toggle
	// variant uses this; the observed behavior never deletes.
	DeleteLoves(ctx context.Context, userID, answerID uint) error
	CountLoves(ctx context.Context, answerID uint) (int64, error)
	// CountLovesByQuestion totals love rows across all of a question's answers.
	CountLovesByQuestion(ctx context.Context, questionID uint) (int64, error)

	// GetCollect returns the user's collect row for an answer regardless of
	// validity, or (nil, nil) when none exists.
	GetCollect(ctx context.Context, userID, answerID uint) (*models.AnswerCollect, error)
	CreateCollect(ctx context.Context, collect *models.AnswerCollect) error
	UpdateCollect(ctx context.Context, collect *models.AnswerCollect) error
	CountCollects(ctx context.Context, questionID uint) (int64, error)

	GetFollow(ctx context.Context, userID, questionID uint) (*models.QuestionFollow, error)
	CreateFollow(ctx context.Context, follow *models.QuestionFollow) error
	UpdateFollow(ctx context.Context, follow *models.QuestionFollow) error
	CountFollows(ctx context.Context, questionID uint) (int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository returns a new EngagementRepository implementation.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreateLove(ctx context.Context, love *models.AnswerLove) error {
	if err := r.db.WithContext(ctx).Create(love).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) HasLove(ctx context.Context, userID, answerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerLove{}).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) DeleteLoves(ctx context.Context, userID, answerID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Delete(&models.AnswerLove{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) CountLoves(ctx context.Context, answerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerLove{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *engagementRepository) CountLovesByQuestion(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerLove{}).
		Where("question_id = ?", questionID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *engagementRepository) GetCollect(ctx context.Context, userID, answerID uint) (*models.AnswerCollect, error) {
	var collect models.AnswerCollect
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		First(&collect).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &collect, nil
}

func (r *engagementRepository) CreateCollect(ctx context.Context, collect *models.AnswerCollect) error {
	if err := r.db.WithContext(ctx).Create(collect).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) UpdateCollect(ctx context.Context, collect *models.AnswerCollect) error {
	if err := r.db.WithContext(ctx).Save(collect).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) CountCollects(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnswerCollect{}).
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *engagementRepository) GetFollow(ctx context.Context, userID, questionID uint) (*models.QuestionFollow, error) {
	var follow models.QuestionFollow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *engagementRepository) CreateFollow(ctx context.Context, follow *models.QuestionFollow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) UpdateFollow(ctx context.Context, follow *models.QuestionFollow) error {
	if err := r.db.WithContext(ctx).Save(follow).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) CountFollows(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.QuestionFollow{}).
		Where("question_id = ? AND is_valid = ?", questionID, true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
