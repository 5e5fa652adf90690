package models

import "time"

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents an account owner of tasks.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:varchar(255);not null"` // Never serialized
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:active;index"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}
