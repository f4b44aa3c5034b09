package models

import (
	"time"
)

// Question is a user-authored question (or article). Soft deletion is the
// domain-level IsValid flag: invalid rows stay in storage but are excluded
// from listings and counts.
type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"size:256" json:"description"`
	Image       string    `gorm:"size:256" json:"image"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ViewCount   int       `gorm:"default:0" json:"view_count"`
	IsValid     bool      `gorm:"default:true" json:"-"`
	Reorder     int       `gorm:"default:0" json:"-"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Derived at query time, never persisted.
	AnswerCount  int64         `gorm:"-" json:"answer_count"`
	CommentCount int64         `gorm:"-" json:"comment_count"`
	FollowCount  int64         `gorm:"-" json:"follow_count"`
	CollectCount int64         `gorm:"-" json:"collect_count"`
	LoveCount    int64         `gorm:"-" json:"love_count"`
	Tags         []QuestionTag `gorm:"-" json:"tags,omitempty"`
}

// ImageURL returns the public path for the question's cover image, or an
// empty string when no image was uploaded.
func (q *Question) ImageURL() string {
	if q.Image == "" {
		return ""
	}
	return "/assets/medias/" + q.Image
}

// QuestionTag is a single tag attached to a question.
type QuestionTag struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:16;not null" json:"name"`
	IsValid    bool      `gorm:"default:true" json:"-"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
