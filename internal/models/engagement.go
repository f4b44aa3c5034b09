package models

import (
	"time"
)

// AnswerLove records a "love" on an answer. Rows are append-only: the
// reference behavior has no un-love path, so repeated loves accumulate and
// the love count is the row count. See EngagementService.ToggleLove for the
// corrected variant.
type AnswerLove struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnswerCollect records a user collecting an answer. Toggling off flips
// IsValid rather than deleting the row.
type AnswerCollect struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IsValid    bool      `gorm:"default:true" json:"-"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuestionFollow records a user following a question. Toggling off flips
// IsValid rather than deleting the row.
type QuestionFollow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IsValid    bool      `gorm:"default:true" json:"-"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
