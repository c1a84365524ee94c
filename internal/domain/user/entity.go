package user

import (
	"time"
)

// User is the account entity. The partial unique index scopes username
// uniqueness to active accounts, so a deactivated account releases its
// username.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex:uniq_users_active_username,where:is_active"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
