package models

import (
	"time"
)

// Answer is a user's answer to a question.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsValid    bool      `gorm:"default:true" json:"-"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	Question   Question  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Derived at query time, never persisted.
	LoveCount    int64 `gorm:"-" json:"love_count"`
	CommentCount int64 `gorm:"-" json:"comment_count"`
}

// AnswerComment is a comment on an answer, linked to both the answer and its
// parent question. LoveCount is a stored counter carried over from the
// legacy schema; no like records exist for comments.
type AnswerComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"size:512;not null" json:"content"`
	LoveCount  int       `gorm:"default:0" json:"love_count"`
	IsPublic   bool      `gorm:"default:true" json:"is_public"`
	IsValid    bool      `gorm:"default:true" json:"-"`
	ReplyID    *uint     `gorm:"index" json:"reply_id,omitempty"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
