// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User statuses. Only active users may log in.
const (
	UserStatusDisabled = 0
	UserStatusActive   = 1
)

// User represents a registered account. The username doubles as the login
// identifier and must be a phone number.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Nickname  string    `gorm:"size:64" json:"nickname"`
	Password  string    `gorm:"size:256;not null" json:"-"`
	Avatar    string    `gorm:"size:256" json:"avatar"`
	Status    int       `gorm:"default:1" json:"status"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// IsActive reports whether the account is allowed to log in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// UserProfile holds the extended 1:1 profile for a user.
// Username is a denormalized copy of User.Username; there is no rename path,
// and registration writes both rows in one transaction.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	RealName  string    `gorm:"size:64" json:"real_name"`
	Bio       string    `gorm:"size:128" json:"bio"`
	Sex       string    `gorm:"size:16" json:"sex"`
	Address   string    `gorm:"size:256" json:"address"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserLoginHistory is an append-only audit row recorded on each successful
// login. Rows are never updated or deleted.
type UserLoginHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;not null" json:"username"`
	LoginType string    `gorm:"size:32" json:"login_type"`
	IP        string    `gorm:"size:32" json:"ip"`
	UserAgent string    `gorm:"size:128" json:"user_agent"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
